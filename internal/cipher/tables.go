package cipher

import (
	"sync"
	"unicode"

	"github.com/danieljhkim/obscura/internal/hash"
)

var defaultTableStrings = [...]string{
	"abcdefghijklmnopqrstuvwxyz",
	"zyxwvutsrqponmlkjihgfedcba",
	"aeiouybcdfghjklmnpqrstvwxz",
	"bcdefghijklmnopqrstuvwxyza",
}

var (
	defaultTableSet     *TableSet
	defaultTableSetOnce sync.Once

	// tableSets caches built sets by fingerprint of their table strings.
	tableSets sync.Map
)

// Table is a single alphabet of substitution symbols. Symbols are stored
// lower-cased; callers restore case at the point of use.
type Table struct {
	symbols []rune
	index   map[rune]int
}

func newTable(s string) *Table {
	symbols := []rune(s)
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		r = unicode.ToLower(r)
		symbols[i] = r
		// First occurrence wins for repeated symbols.
		if _, ok := index[r]; !ok {
			index[r] = i
		}
	}
	return &Table{symbols: symbols, index: index}
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}

// IndexOf returns the position of the lower-cased rune r in the table.
func (t *Table) IndexOf(r rune) (int, bool) {
	i, ok := t.index[unicode.ToLower(r)]
	return i, ok
}

// At returns the symbol at i, wrapping modulo the table length.
// It must not be called on an empty table.
func (t *Table) At(i int) rune {
	return t.symbols[mod(i, len(t.symbols))]
}

// String returns the table's symbols.
func (t *Table) String() string {
	return string(t.symbols)
}

// TableSet is an ordered, immutable list of tables indexed by position modulo
// its length.
type TableSet struct {
	fingerprint string
	tables      []*Table
}

// DefaultTableSet returns the built-in four-table set.
func DefaultTableSet() *TableSet {
	defaultTableSetOnce.Do(func() {
		defaultTableSet = NewTableSet(defaultTableStrings[:]...)
	})
	return defaultTableSet
}

// DefaultTables returns a copy of the built-in table strings.
func DefaultTables() []string {
	out := make([]string, len(defaultTableStrings))
	copy(out, defaultTableStrings[:])
	return out
}

// NewTableSet returns the table set for the given alphabets. An empty list
// resolves to the default set. Sets are shared between callers passing the
// same alphabets, so the lookup index for a set is built only once.
func NewTableSet(tables ...string) *TableSet {
	if len(tables) == 0 {
		return DefaultTableSet()
	}

	fingerprint := hash.Strings(tables...)
	if cached, ok := tableSets.Load(fingerprint); ok {
		return cached.(*TableSet)
	}

	set := &TableSet{
		fingerprint: fingerprint,
		tables:      make([]*Table, len(tables)),
	}
	for i, s := range tables {
		set.tables[i] = newTable(s)
	}

	actual, _ := tableSets.LoadOrStore(fingerprint, set)
	return actual.(*TableSet)
}

// Len returns the number of tables in the set.
func (s *TableSet) Len() int {
	return len(s.tables)
}

// At returns the table at i, wrapping modulo the set length.
func (s *TableSet) At(i int) *Table {
	return s.tables[mod(i, len(s.tables))]
}

// Select returns the table used for the character at position.
func (s *TableSet) Select(position int) *Table {
	return s.At(position)
}

// Fingerprint identifies the set by the content of its tables.
func (s *TableSet) Fingerprint() string {
	return s.fingerprint
}

// Strings returns the table alphabets in order.
func (s *TableSet) Strings() []string {
	out := make([]string, len(s.tables))
	for i, t := range s.tables {
		out[i] = t.String()
	}
	return out
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// matchCase returns sym in the case of orig.
func matchCase(orig, sym rune) rune {
	if orig >= 'A' && orig <= 'Z' {
		return unicode.ToUpper(sym)
	}
	return sym
}
