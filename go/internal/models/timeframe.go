package models

import (
	"fmt"
	"strings"
	"time"
)

// Timeframe bounds statistics to a rolling window ending at an evaluation instant
type Timeframe string

const (
	TimeframeLastWeek  Timeframe = "LAST_WEEK"
	TimeframeLastMonth Timeframe = "LAST_MONTH"
	TimeframeAllTime   Timeframe = "ALL_TIME"
)

// ParseTimeframe accepts the enum value case-insensitively. An empty string means all time.
func ParseTimeframe(s string) (Timeframe, error) {
	switch Timeframe(strings.ToUpper(strings.TrimSpace(s))) {
	case TimeframeLastWeek:
		return TimeframeLastWeek, nil
	case TimeframeLastMonth:
		return TimeframeLastMonth, nil
	case TimeframeAllTime, "":
		return TimeframeAllTime, nil
	default:
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
}

// Cutoff returns the earliest match date included by the timeframe when evaluated at now.
// ok is false when the timeframe applies no date filter.
func (tf Timeframe) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch tf {
	case TimeframeLastWeek:
		return now.AddDate(0, 0, -7), true
	case TimeframeLastMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// Contains reports whether a match played at date falls inside the window.
// A zero date (missing match) is only inside the all-time window.
func (tf Timeframe) Contains(date, now time.Time) bool {
	cutoff, ok := tf.Cutoff(now)
	if !ok {
		return true
	}
	if date.IsZero() {
		return false
	}
	return !date.Before(cutoff)
}
