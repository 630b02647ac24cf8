package valueobject

import (
	"strings"
	"time"
)

// zonedLayouts carry their own offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// localLayouts are interpreted in the local zone, matching how a browser
// reads a datetime-local value
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 style timestamp. The boolean is false when
// the value is empty or in no recognised layout.
func ParseTimestamp(s string) (time.Time, bool) {
	return ParseTimestampIn(s, time.Local)
}

// ParseTimestampIn is ParseTimestamp with an explicit zone for values
// that carry no offset
func ParseTimestampIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders a raw timestamp for display, falling back to the
// raw value when it cannot be parsed
func FormatTimestamp(s string) string {
	t, ok := ParseTimestamp(s)
	if !ok {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	return t.Local().Format("2006-01-02 15:04")
}
