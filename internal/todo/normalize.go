package todo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeOptional trims s and returns nil when nothing remains.
// Applied once at the request boundary; stores never see blank strings.
func NormalizeOptional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ParseCost converts a decimal dollar amount ("12.5") to integer cents
// (1250). Blank input means absent, never zero. Non-numeric input fails
// with ErrInvalidInput; negative amounts fail validation.
func ParseCost(s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	dollars, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cost %q is not a number", ErrInvalidInput, s)
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is an amount.
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return nil, fmt.Errorf("%w: cost %q is not a number", ErrInvalidInput, s)
	}
	if dollars < 0 {
		return nil, &ValidationError{Field: "cost", Reason: "must not be negative"}
	}

	cents := math.Round(dollars * 100)
	// Converting a float at or past MaxInt64 to int64 wraps negative.
	if cents >= math.MaxInt64 {
		return nil, fmt.Errorf("%w: cost %q is too large", ErrInvalidInput, s)
	}

	v := int64(cents)
	return &v, nil
}

// FormatCost renders integer cents as a dollar string, e.g. 1250 -> "$12.50".
func FormatCost(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
