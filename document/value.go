package document

import (
	"strconv"
	"strings"

	"github.com/ndscene/ndscene"
)

// parseFloat converts an attribute value to a float. Malformed values are
// skipped with a warning so the caller retains the prior field value.
func parseFloat(element, attr, raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		ndscene.Logger().Warn("document: skipping malformed numeric field",
			"element", element, "attr", attr, "value", raw)
		return 0, false
	}
	return v, true
}

// parseInt converts an attribute value to an int. A trailing "D" is
// accepted because older documents spelled model depths like "4D".
// Malformed values are skipped with a warning.
func parseInt(element, attr, raw string) (int, bool) {
	t := strings.TrimSpace(raw)
	t = strings.TrimSuffix(t, "D")
	v, err := strconv.Atoi(t)
	if err != nil {
		ndscene.Logger().Warn("document: skipping malformed integer field",
			"element", element, "attr", attr, "value", raw)
		return 0, false
	}
	return v, true
}

// number extracts a float from a decoded structured value. YAML and JSON
// decoding yield a mix of integer and float types for numeric fields.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// boolean extracts a bool from a decoded structured value.
func boolean(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// warnField reports a structured field that is present but not of the
// expected type; the prior state value is retained.
func warnField(field string, v any) {
	ndscene.Logger().Warn("document: skipping malformed field",
		"field", field, "value", v)
}
