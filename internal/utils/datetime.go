package utils

import (
	"time"
)

const (
	fullDateTimeLayout   = "Monday January, 2, 2006 at 3:04PM"
	mediumDateTimeLayout = "Mon Jan, 02, 2006 3:04PM"
)

// acceptedTimestampLayouts covers the ISO-ish strings the show form
// may submit: HTML datetime-local, RFC 3339, and plain SQL timestamps.
var acceptedTimestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a submitted timestamp string, interpreting
// zone-less values as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range acceptedTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// FormatDatetime is the template display function for timestamps. Mode
// "full" spells out the weekday and month; "medium" (the default)
// abbreviates them.
func FormatDatetime(value interface{}, mode ...string) string {
	var t time.Time
	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return ""
		}
		t = *v
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return v
		}
		t = parsed
	default:
		return ""
	}

	layout := mediumDateTimeLayout
	if len(mode) > 0 && mode[0] == "full" {
		layout = fullDateTimeLayout
	}
	return t.Format(layout)
}
