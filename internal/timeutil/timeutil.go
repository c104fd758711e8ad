package timeutil

import "time"

// TimestampLayout is ISO-8601 in UTC with millisecond precision, e.g. 2025-04-01T18:05:09.123Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp formats t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
