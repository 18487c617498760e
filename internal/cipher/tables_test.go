package cipher

import (
	"sync"
	"testing"
)

func TestDefaultTableSet(t *testing.T) {
	set := DefaultTableSet()
	if set.Len() != 4 {
		t.Fatalf("expected 4 default tables, got %d", set.Len())
	}
	if DefaultTableSet() != set {
		t.Error("DefaultTableSet should return the same instance")
	}
	if NewTableSet() != set {
		t.Error("NewTableSet() with no tables should return the default set")
	}
	if NewTableSet(DefaultTables()...) != set {
		t.Error("NewTableSet with the default alphabets should share the default set")
	}
}

func TestDefaultTables_ReturnsCopy(t *testing.T) {
	tables := DefaultTables()
	tables[0] = "mutated"

	if got := DefaultTables()[0]; got != "abcdefghijklmnopqrstuvwxyz" {
		t.Errorf("default tables were mutated: %q", got)
	}
	if got := DefaultTableSet().At(0).String(); got != "abcdefghijklmnopqrstuvwxyz" {
		t.Errorf("default set was mutated: %q", got)
	}
}

func TestNewTableSet_CaseInsensitive(t *testing.T) {
	set := NewTableSet("ZYXWVUTSRQPONMLKJIHGFEDCBA")

	if got := set.Strings()[0]; got != "zyxwvutsrqponmlkjihgfedcba" {
		t.Errorf("expected lower-cased table, got %q", got)
	}

	i, ok := set.At(0).IndexOf('B')
	if !ok || i != 24 {
		t.Errorf("IndexOf('B') = %d, %v; want 24, true", i, ok)
	}
}

func TestNewTableSet_SharedByContent(t *testing.T) {
	a := NewTableSet("abc", "cab")
	b := NewTableSet("abc", "cab")
	c := NewTableSet("abc", "bca")

	if a != b {
		t.Error("identical alphabets should share one set")
	}
	if a == c {
		t.Error("different alphabets should not share a set")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different alphabets should have different fingerprints")
	}
}

func TestNewTableSet_Concurrent(t *testing.T) {
	const workers = 16
	results := make([]*TableSet, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = NewTableSet("qwertyuiopasdfghjklzxcvbnm", "mnbvcxzlkjhgfdsapoiuytrewq")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatalf("worker %d got a different set instance", i)
		}
	}
}

func TestTable_RepeatedSymbolUsesFirst(t *testing.T) {
	table := newTable("abca")
	i, ok := table.IndexOf('a')
	if !ok || i != 0 {
		t.Errorf("IndexOf('a') = %d, %v; want 0, true", i, ok)
	}
}

func TestTable_At(t *testing.T) {
	table := newTable("abcd")
	tests := []struct {
		i    int
		want rune
	}{
		{0, 'a'},
		{5, 'b'},
		{-1, 'd'},
		{-6, 'c'},
	}
	for _, tt := range tests {
		if got := table.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}

func TestTableSet_Select(t *testing.T) {
	set := DefaultTableSet()
	if set.Select(5) != set.At(1) {
		t.Error("Select(5) should pick table 1 of 4")
	}
	if set.Select(8) != set.At(0) {
		t.Error("Select(8) should pick table 0 of 4")
	}
}
