package classic

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// SymbolMap replaces characters with glyphs. Decoding matches the longest
// glyph first, so a map whose glyphs share prefixes still inverts exactly as
// long as no glyph is a concatenation of others.
type SymbolMap struct {
	forward map[rune]string
	glyphs  []glyph
}

type glyph struct {
	text string
	char rune
}

const (
	defaultLowerGlyphs = "🔥⭐🌟💫✨🌈🌊🌀🍀🌙🌞🌸🌺🌻🌷🌹🌱🍁🌿🌾🍄🌵🌴🎋🌲🌳"
	defaultUpperGlyphs = "🚀⚡💎🎯🎪🎭🎨🎵🎸🎺🎻🥁🎤🎧🎮🕹🎲🃏🎊🎁🎈🎀💍👑🔱⚔"
)

var (
	defaultSymbolMap     *SymbolMap
	defaultSymbolMapOnce sync.Once
)

// DefaultSymbolMap returns the built-in map of a-z and A-Z onto single-rune
// emoji.
func DefaultSymbolMap() *SymbolMap {
	defaultSymbolMapOnce.Do(func() {
		entries := make(map[string]string, 52)
		lower := []rune(defaultLowerGlyphs)
		upper := []rune(defaultUpperGlyphs)
		for i := 0; i < 26; i++ {
			entries[string(rune('a'+i))] = string(lower[i])
			entries[string(rune('A'+i))] = string(upper[i])
		}
		m, err := NewSymbolMap(entries)
		if err != nil {
			panic(fmt.Sprintf("classic: invalid default symbol map: %v", err))
		}
		defaultSymbolMap = m
	})
	return defaultSymbolMap
}

// NewSymbolMap builds a map from single-character keys to non-empty glyphs.
// Glyphs must be unique so decoding is unambiguous.
func NewSymbolMap(entries map[string]string) (*SymbolMap, error) {
	m := &SymbolMap{
		forward: make(map[rune]string, len(entries)),
		glyphs:  make([]glyph, 0, len(entries)),
	}

	seen := make(map[string]string, len(entries))
	for key, text := range entries {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("symbol map key %q must be a single character", key)
		}
		if text == "" {
			return nil, fmt.Errorf("symbol map glyph for %q is empty", key)
		}
		if other, dup := seen[text]; dup {
			return nil, fmt.Errorf("symbol map glyph %q is shared by %q and %q", text, other, key)
		}
		seen[text] = key

		r, _ := utf8.DecodeRuneInString(key)
		m.forward[r] = text
		m.glyphs = append(m.glyphs, glyph{text: text, char: r})
	}

	// Longest first, then lexical for a stable order.
	sort.Slice(m.glyphs, func(i, j int) bool {
		if len(m.glyphs[i].text) != len(m.glyphs[j].text) {
			return len(m.glyphs[i].text) > len(m.glyphs[j].text)
		}
		return m.glyphs[i].text < m.glyphs[j].text
	})

	return m, nil
}

// Len returns the number of mapped characters.
func (m *SymbolMap) Len() int {
	return len(m.forward)
}

// Encode replaces every mapped character with its glyph.
func (m *SymbolMap) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if g, ok := m.forward[r]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Decode replaces glyphs with the characters they stand for. Text that matches
// no glyph is copied unchanged.
func (m *SymbolMap) Decode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for len(text) > 0 {
		if r, n, ok := m.match(text); ok {
			b.WriteRune(r)
			text = text[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(text)
		b.WriteString(text[:size])
		text = text[size:]
	}
	return b.String()
}

func (m *SymbolMap) match(text string) (rune, int, bool) {
	for _, g := range m.glyphs {
		if strings.HasPrefix(text, g.text) {
			return g.char, len(g.text), true
		}
	}
	return 0, 0, false
}
