// Package streak derives activity streaks from the dates a learner was active.
package streak

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/toeicprep/internal/entity"
)

// Days returns the distinct UTC calendar days of dates, most recent first.
func Days(dates []time.Time) []time.Time {
	days := lo.UniqBy(lo.Map(dates, func(t time.Time, _ int) time.Time {
		return entity.DayOf(t)
	}), func(d time.Time) int64 {
		return d.Unix()
	})
	slices.SortFunc(days, func(a, b time.Time) int {
		return b.Compare(a)
	})
	return days
}

// Compute merges dates into distinct days and counts streaks relative to today. The
// current streak may start today or yesterday and stops at the first missing day.
func Compute(dates []time.Time, today time.Time) entity.StreakSummary {
	days := Days(dates)
	if len(days) == 0 {
		return entity.StreakSummary{}
	}
	return entity.StreakSummary{
		Current:         current(days, entity.DayOf(today)),
		Longest:         longest(days),
		TotalActiveDays: len(days),
	}
}

func current(days []time.Time, today time.Time) int {
	active := lo.SliceToMap(days, func(d time.Time) (int64, struct{}) {
		return d.Unix(), struct{}{}
	})
	cursor := today
	if _, ok := active[cursor.Unix()]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	n := 0
	for {
		if _, ok := active[cursor.Unix()]; !ok {
			return n
		}
		n++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

func longest(days []time.Time) int {
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}
