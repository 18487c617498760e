package cipher

import (
	"errors"
	"unicode"
)

// ErrMissingKeyword indicates a polyalphabetic transform without a keyword.
var ErrMissingKeyword = errors.New("keyword is required")

// Polyalphabetic substitutes letters using a repeating keyword. The key
// character at each position picks both the table and the shift, and the
// keyword advances on every character of the input, letters or not.
type Polyalphabetic struct {
	keyword []rune
	tables  *TableSet
}

// NewPolyalphabetic builds a keyword transform. A nil tables value selects the
// default set.
func NewPolyalphabetic(keyword string, tables *TableSet) (*Polyalphabetic, error) {
	if keyword == "" {
		return nil, ErrMissingKeyword
	}
	if tables == nil || tables.Len() == 0 {
		tables = DefaultTableSet()
	}
	return &Polyalphabetic{keyword: []rune(keyword), tables: tables}, nil
}

// Encode substitutes text forward.
func (p *Polyalphabetic) Encode(text string) string {
	return p.transform(text, 1)
}

// Decode inverts Encode under the same keyword and tables.
func (p *Polyalphabetic) Decode(text string) string {
	return p.transform(text, -1)
}

// keyShift returns the alphabet offset of the key character at position.
// Key characters outside a-z produce out-of-range offsets, which are reduced
// modulo the set and table lengths like any other.
func (p *Polyalphabetic) keyShift(position int) int {
	k := unicode.ToLower(p.keyword[position%len(p.keyword)])
	return int(k - 'a')
}

func (p *Polyalphabetic) transform(text string, direction int) string {
	runes := []rune(text)
	for i, r := range runes {
		if !isASCIILetter(r) {
			continue
		}

		shift := p.keyShift(i)
		table := p.tables.At(shift)
		found, ok := table.IndexOf(r)
		if !ok {
			continue
		}

		runes[i] = matchCase(r, table.At(found+direction*shift))
	}
	return string(runes)
}
