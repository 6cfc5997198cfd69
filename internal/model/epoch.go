package model

import (
	"fmt"
	"strconv"
	"time"
)

// EpochMillis renders t as a decimal-string millisecond epoch, the storage
// encoding for every exam timestamp.
func EpochMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseEpochMillis parses a decimal-string millisecond epoch.
func ParseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch millis %q: %w", s, err)
	}
	return time.UnixMilli(ms), nil
}
