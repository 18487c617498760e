package cipher

// MultiTable substitutes each letter through a table selected by its position,
// moved by a position-dependent shift.
//
// Decode(Encode(x)) == x whenever every letter of x appears in each table the
// configuration references. A symbol missing from its table on the decode
// side is passed through unchanged rather than reported.
type MultiTable struct {
	// Tables is the set to select from; nil means the default set.
	Tables *TableSet

	Pattern      ShiftPattern
	BaseShift    int
	CustomShifts []int
}

// Encode substitutes text forward.
func (m MultiTable) Encode(text string) string {
	return m.transform(text, 1)
}

// Decode inverts Encode under the same configuration.
func (m MultiTable) Decode(text string) string {
	return m.transform(text, -1)
}

func (m MultiTable) tableSet() *TableSet {
	if m.Tables == nil || m.Tables.Len() == 0 {
		return DefaultTableSet()
	}
	return m.Tables
}

func (m MultiTable) transform(text string, direction int) string {
	tables := m.tableSet()
	runes := []rune(text)
	for i, r := range runes {
		if !isASCIILetter(r) {
			continue
		}

		table := tables.Select(i)
		found, ok := table.IndexOf(r)
		if !ok {
			continue
		}

		shift := GenerateShift(i, m.Pattern, m.BaseShift, m.CustomShifts)
		runes[i] = matchCase(r, table.At(found+direction*shift))
	}
	return string(runes)
}
