package cipher

// ShiftPattern names a rule mapping a character position to a shift amount.
type ShiftPattern string

const (
	PatternEvenOdd     ShiftPattern = "even-odd"
	PatternFibonacci   ShiftPattern = "fibonacci"
	PatternPrime       ShiftPattern = "prime"
	PatternProgressive ShiftPattern = "progressive"
	PatternCustom      ShiftPattern = "custom"
)

// DefaultBaseShift is the base shift used when a configuration omits one.
const DefaultBaseShift = 3

var (
	fibonacciShifts = [...]int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	primeShifts     = [...]int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}
)

// Patterns returns the named shift patterns in a stable order.
func Patterns() []ShiftPattern {
	return []ShiftPattern{
		PatternEvenOdd,
		PatternFibonacci,
		PatternPrime,
		PatternProgressive,
		PatternCustom,
	}
}

// Known reports whether p is one of the named patterns.
func (p ShiftPattern) Known() bool {
	for _, known := range Patterns() {
		if p == known {
			return true
		}
	}
	return false
}

// GenerateShift returns the shift for position under pattern.
//
// The result is the raw pattern value and is never reduced modulo 26;
// consumers reduce it by the length of the table they index. Unknown patterns
// and an empty custom sequence fall back to baseShift.
func GenerateShift(position int, pattern ShiftPattern, baseShift int, customShifts []int) int {
	switch pattern {
	case PatternEvenOdd:
		if position%2 == 0 {
			return baseShift
		}
		return baseShift + 1
	case PatternFibonacci:
		return fibonacciShifts[mod(position, len(fibonacciShifts))]
	case PatternPrime:
		return primeShifts[mod(position, len(primeShifts))]
	case PatternProgressive:
		return baseShift + mod(position, 10)
	case PatternCustom:
		if len(customShifts) == 0 {
			return baseShift
		}
		return customShifts[mod(position, len(customShifts))]
	default:
		return baseShift
	}
}

// mod returns the non-negative remainder of a divided by n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
