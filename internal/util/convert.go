package util

import (
	"fmt"
	"strconv"
)

// ToInt64 safely converts a driver value to int64.
// The Snowflake driver returns NUMBER columns as strings, so string parsing
// is the common path. Returns 0 for nil or unsupported types.
func ToInt64(v any) int64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(n, 64)
		return int64(f)
	case []byte:
		return ToInt64(string(n))
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ToFloat64 safely converts a driver value to float64.
// Returns 0 for nil or unsupported types.
func ToFloat64(v any) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(n), 64)
		return f
	default:
		return 0
	}
}

// ToString safely converts a driver value to a string.
// Returns "" for nil.
func ToString(v any) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
