package codec

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Unit of a Size.
type Unit string

const (
	UnitNone    Unit = ""
	UnitPx      Unit = "px"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitPercent Unit = "%"
)

// Size is a number with a unit. Size with UnitNone is never written out,
// the declaration is omitted instead.
type Size struct {
	Value float64
	Unit  Unit
}

// Px, Em, Rem and Percent are convenience constructors.
func Px(v float64) Size      { return Size{Value: v, Unit: UnitPx} }
func Em(v float64) Size      { return Size{Value: v, Unit: UnitEm} }
func Rem(v float64) Size     { return Size{Value: v, Unit: UnitRem} }
func Percent(v float64) Size { return Size{Value: v, Unit: UnitPercent} }

// IsNone reports whether size should not be emitted.
func (s Size) IsNone() bool {
	return s.Unit == UnitNone
}

// String returns CSS text of the size, empty for UnitNone.
func (s Size) String() string {
	if s.IsNone() {
		return ""
	}
	return FormatNumber(s.Value) + string(s.Unit)
}

// ParseSize splits leading number from trailing unit. A bare number takes
// def as its unit. Units outside {px, em, rem, %} are not recognized.
func ParseSize(s string, def Unit) (Size, bool) {
	raw := strings.ToLower(strings.TrimSpace(s))

	numEnd := 0
	for i, r := range raw {
		if unicode.IsDigit(r) || r == '.' || (i == 0 && (r == '-' || r == '+')) {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return Size{}, false
	}

	num, err := strconv.ParseFloat(raw[:numEnd], 64)
	if err != nil {
		return Size{}, false
	}
	unit := Unit(raw[numEnd:])
	switch unit {
	case UnitPx, UnitEm, UnitRem, UnitPercent:
	case UnitNone:
		unit = def
	default:
		return Size{}, false
	}
	return Size{Value: num, Unit: unit}, true
}

// IsSize reports whether s is a size ParseSize understands.
func IsSize(s string) bool {
	_, ok := ParseSize(s, UnitPx)
	return ok
}

// ParseNumber parses a plain CSS number.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsNumber reports whether s is a plain number.
func IsNumber(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// FormatNumber prints number without trailing zeros, rounded to three
// decimals.
func FormatNumber(f float64) string {
	f = math.Round(f*1000) / 1000
	if f == 0 {
		// avoid "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
