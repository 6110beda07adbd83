package input

import (
	"strconv"
	"strings"
	"time"
)

// String extracts a string value with a default fallback.
// Returns defaultVal if the key doesn't exist, the value is nil, or not a
// string.
func String(m map[string]any, key string, defaultVal string) string {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	str, ok := val.(string)
	if !ok {
		return defaultVal
	}
	return str
}

// Int extracts an int value with type coercion and a default fallback.
// Handles int, int64, float64, and numeric strings.
func Int(m map[string]any, key string, defaultVal int) int {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// Float extracts a float64 value with type coercion and a default fallback.
// Handles float64, int, int64, and numeric strings.
func Float(m map[string]any, key string, defaultVal float64) float64 {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// Bool extracts a bool value with a default fallback.
// Handles bool and the strings accepted by strconv.ParseBool.
func Bool(m map[string]any, key string, defaultVal bool) bool {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
		return defaultVal
	default:
		return defaultVal
	}
}

// Duration extracts a time.Duration with a default fallback.
// Handles duration strings ("30s"), and numbers interpreted as
// milliseconds, matching how timeouts arrive on the wire.
func Duration(m map[string]any, key string, defaultVal time.Duration) time.Duration {
	if m == nil {
		return defaultVal
	}

	val, ok := m[key]
	if !ok || val == nil {
		return defaultVal
	}

	switch v := val.(type) {
	case string:
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
		return defaultVal
	case int:
		return time.Duration(v) * time.Millisecond
	case int64:
		return time.Duration(v) * time.Millisecond
	case float64:
		return time.Duration(v) * time.Millisecond
	default:
		return defaultVal
	}
}

// StringSlice extracts a list of strings.
// Handles []string, []any of strings, and comma-separated strings; entries
// are trimmed of surrounding whitespace and empty entries dropped. Returns
// nil if the key doesn't exist or holds none of those shapes.
func StringSlice(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}

	val, ok := m[key]
	if !ok || val == nil {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return trimAll(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return trimAll(items)
	case string:
		return trimAll(strings.Split(v, ","))
	default:
		return nil
	}
}

func trimAll(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
