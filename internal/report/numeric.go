package report

import (
	"math"
	"strconv"
	"strings"
)

// Normalize converts a loosely typed cost/metric value into a float64.
// Source data is European-locale formatted (period thousands separator,
// comma decimal separator) and may arrive either as a string or as a native
// number from an upstream computation. Malformed input degrades to 0;
// Normalize never panics.
func Normalize(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(n)
	case float32:
		return finiteOrZero(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return normalizeString(n)
	default:
		return 0
	}
}

func normalizeString(s string) float64 {
	// "1.234,56" -> "1234,56" -> "1234.56"
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(f)
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// TruthyFlag canonicalizes the inconsistently encoded boolean flags of the
// upstream exporter: boolean true, the string "true" and numeric 1 all
// count as set.
func TruthyFlag(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	case float64:
		return b == 1
	case int:
		return b == 1
	case int64:
		return b == 1
	default:
		return false
	}
}
