package entity

import "time"

// StreakSummary is derived on every request from the activity logs.
type StreakSummary struct {
	Current         int
	Longest         int
	TotalActiveDays int
}

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
