package services

import "time"

// CurrentStreak computes how many consecutive calendar days, counting
// backward from today, have a completion. When today itself has no
// completion yet the count starts at yesterday instead, so an ongoing streak
// survives until the current day is actually missed. That grace step happens
// at most once; any earlier gap ends the run immediately.
//
// The dates may carry any time-of-day or zone; only their calendar day
// matters. The function is pure and cannot fail.
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	completed := make(map[time.Time]struct{}, len(dates))
	for _, date := range dates {
		completed[dayKey(date)] = struct{}{}
	}

	cursor := dayKey(today)
	if _, ok := completed[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := completed[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// dayKey collapses a moment to a zone-independent calendar day so dates
// stored in different offsets compare equal.
func dayKey(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
