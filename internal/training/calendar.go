package training

import "time"

// WeekNumber returns the 1-indexed training week: the number of whole 7-day
// periods elapsed between the first logged date and today, plus one.
// A nil first date (empty log) means week 1. The week is global for the
// whole plan, not tracked per exercise.
func WeekNumber(first *time.Time, today time.Time) int {
	if first == nil {
		return 1
	}

	days := int(dateOnly(today).Sub(dateOnly(*first)).Hours() / 24)
	if days < 0 {
		return 1
	}
	return days/7 + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
