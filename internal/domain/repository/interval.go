package repository

import (
	"strings"
	"time"
)

// Interval identifies the bar spacing of a price series.
type Interval string

const (
	IntervalDaily   Interval = "1d"
	IntervalWeekly  Interval = "1wk"
	IntervalMonthly Interval = "1mo"
)

// IsValidInterval returns true if iv is a canonical interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the default interval.
func DefaultInterval() Interval { return IntervalDaily }

// NormalizeInterval maps raw user input and common synonyms to a canonical
// interval. Unknown values are kept as-is (lowercased); the window sizing
// falls back to a short default for them.
func NormalizeInterval(s string) Interval {
	t := strings.ToLower(strings.TrimSpace(s))
	switch t {
	case "", "1d", "d", "day", "daily":
		return IntervalDaily
	case "1wk", "w", "wk", "week", "weekly":
		return IntervalWeekly
	case "1mo", "m", "mo", "month", "monthly":
		return IntervalMonthly
	default:
		return Interval(t)
	}
}

// WindowFor returns the provider query window for an interval. The daily
// window must yield more than 200 bars so a 200-period SMA is defined at the
// latest index; a calendar year of daily bars (~252) guarantees that through
// weekend and holiday gaps.
func WindowFor(iv Interval) time.Duration {
	const day = 24 * time.Hour
	switch iv {
	case IntervalDaily:
		return 365 * day
	case IntervalWeekly:
		return 365 * day
	case IntervalMonthly:
		return 1825 * day
	default:
		return 90 * day
	}
}
