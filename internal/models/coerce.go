package models

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptionalNumber coerces a loosely-typed field value into an
// optional number. Blank input and anything that does not parse to a
// finite number yield nil ("not recorded"), so NaN never reaches the
// aggregates. A decimal comma is accepted.
func ParseOptionalNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || !isFinite(v) {
		return nil
	}
	return &v
}

// ClampScale bounds an intensity value to the 0-10 scale.
func ClampScale(v float64) float64 {
	if !isFinite(v) || v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

// Positive reports whether an optional number is present with a value
// greater than zero. Zero and negative readings are data-entry errors and
// count as absent.
func Positive(v *float64) bool {
	return v != nil && isFinite(*v) && *v > 0
}

// CleanText normalizes a free-text field for storage: surrounding
// whitespace is stripped, and whitespace-only input collapses to the
// empty string, which every reader treats as absent.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
