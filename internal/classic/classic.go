// Package classic provides the fixed, single-table ciphers obscura offers next
// to the dynamic engine: Caesar, ROT13, the Atbash mirror and a letter to
// glyph symbol map.
package classic

import "github.com/danieljhkim/obscura/internal/cipher"

// DefaultCaesarShift is the shift used when none is configured.
const DefaultCaesarShift = 3

// Caesar moves every ASCII letter forward by shift places.
func Caesar(text string, shift int) string {
	return cipher.ShiftLetters(text, shift)
}

// CaesarDecode inverts Caesar.
func CaesarDecode(text string, shift int) string {
	return cipher.ShiftLetters(text, -shift)
}

// ROT13 is Caesar with a shift of 13. It is its own inverse.
func ROT13(text string) string {
	return cipher.ShiftLetters(text, 13)
}

// Mirror maps each ASCII letter to its mirror in the alphabet (a<->z, b<->y),
// preserving case. It is its own inverse.
func Mirror(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z':
			runes[i] = 'z' - (r - 'a')
		case r >= 'A' && r <= 'Z':
			runes[i] = 'Z' - (r - 'A')
		}
	}
	return string(runes)
}
