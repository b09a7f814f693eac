// Package numeric parses the integer and float literal grammars the
// tokenizer recognizes: decimal, 0x hex, 0b binary, and decimal floats.
// Acacia's runtime integers are 32-bit scoreboard values (spec.md §4.1), so
// ParseInt reports overflow against that range rather than int64/int128 the
// way a general-purpose language's literal parser would.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// ParseInt parses a decimal, "0x"/"0X" hex, or "0b"/"0B" binary integer
// literal (as already isolated by the tokenizer) into an int32. ok is false
// on overflow of the 32-bit signed range; err is non-nil only for a
// malformed digit string, which the tokenizer should never produce.
func ParseInt(text string) (value int32, ok bool, err error) {
	base := 10
	digits := text
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base = 16
		digits = text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base = 2
		digits = text[2:]
	}

	n, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, false, err
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false, nil
	}
	return int32(n), true, nil
}

// ParseFloat parses a decimal float literal ("1.5", "1.", ".5", "1e10").
func ParseFloat(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// IsHexDigit reports whether r is a hex digit.
func IsHexDigit(r byte) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsIdentStart reports whether r can start an identifier.
func IsIdentStart(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsIdentPart reports whether r can continue an identifier.
func IsIdentPart(r byte) bool {
	return IsIdentStart(r) || IsDigit(r)
}
