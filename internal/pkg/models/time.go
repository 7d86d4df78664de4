package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// UnixMilli converts a time.Time to unix milliseconds (the delivery topic wire format)
func UnixMilli(t time.Time) int64 {
	return t.UnixMilli()
}

// FromUnixMilli converts unix milliseconds back to a time.Time in UTC
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
