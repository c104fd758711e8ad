package timeutil

import (
	"testing"
	"time"
)

func TestFormatTimestampUsesUTCMillis(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	ts := time.Date(2025, 4, 1, 13, 5, 9, 123456789, loc)

	if got := FormatTimestamp(ts); got != "2025-04-01T18:05:09.123Z" {
		t.Fatalf("unexpected timestamp %s", got)
	}
}

func TestFormatTimestampPadsZeroMillis(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	if got := FormatTimestamp(ts); got != "2025-01-02T03:04:05.000Z" {
		t.Fatalf("unexpected timestamp %s", got)
	}
}
