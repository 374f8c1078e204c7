package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime converts a clock value to seconds. Accepted forms:
// "MM:SS", "HH:MM:SS", a numeric string ("330", "12.5") or a bare
// number already in seconds.
func ParseTime(value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		return ParseTimeString(v)
	default:
		return 0, fmt.Errorf("could not parse time: %v (unsupported type %T)", value, value)
	}
}

// ParseTimeString parses "MM:SS", "HH:MM:SS" or plain seconds.
func ParseTimeString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("could not parse time: empty string")
	}

	if !strings.Contains(s, ":") {
		sec, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse time: %q", s)
		}
		return sec, nil
	}

	parts := strings.Split(s, ":")
	fields := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time format: %q", s)
		}
		fields[i] = n
	}

	switch len(fields) {
	case 2: // MM:SS
		return float64(fields[0]*60 + fields[1]), nil
	case 3: // HH:MM:SS
		return float64(fields[0]*3600 + fields[1]*60 + fields[2]), nil
	default:
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
}

// FormatTime renders seconds as HH:MM:SS, truncating fractions.
func FormatTime(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
