package tui

import (
	"math"
	"strconv"
	"strings"
)

// ParseLenient converts user-entered text to a float. Malformed text is
// never an error: the longest parseable numeric prefix wins ("12x" is
// 12), and text with no numeric prefix reports ok=false so the caller
// treats the entry as unset. Non-finite values are rejected.
func ParseLenient(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(s[:i], 64)
		if err != nil {
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

func isInputRune(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e'
}
