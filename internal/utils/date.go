package utils

import "time"

// ParseDate accepts RFC 3339 timestamps or plain dates; empty means now.
func ParseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, v)
}
