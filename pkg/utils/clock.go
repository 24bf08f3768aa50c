package utils

import "time"

// NowISO is the join-date format persisted on user rows.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func NowMillis() int64 {
	return time.Now().UnixMilli()
}
