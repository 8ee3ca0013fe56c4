package util

import "time"

// UnixDate formats a Unix-seconds timestamp as YYYY-MM-DD in UTC.
func UnixDate(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02")
}

// UnixDateDefault formats ts like UnixDate, falling back to def when ts <= 0.
func UnixDateDefault(ts int64, def string) string {
	if ts <= 0 {
		return def
	}
	return UnixDate(ts)
}
