package utils

import (
	"time"
)

var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	DateTimeLocalLayout,
}

// ParseTimestamp parses an API timestamp. RFC 3339 values keep their zone,
// zone-less values are read in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return parsed, nil
	}
	for _, layout := range zonelessLayouts {
		if parsed, zonelessErr := time.ParseInLocation(layout, value, loc); zonelessErr == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}

// ParseDateTimeLocal truncates value to minute precision before parsing it,
// the way a datetime-local input round-trips an API timestamp.
func ParseDateTimeLocal(value string, loc *time.Location) (time.Time, error) {
	if len(value) > len(DateTimeLocalLayout) {
		if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
			return parsed.In(loc).Truncate(time.Minute), nil
		}
		value = value[:len(DateTimeLocalLayout)]
	}
	return time.ParseInLocation(DateTimeLocalLayout, value, loc)
}
