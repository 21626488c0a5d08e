package helper

import (
	"time"

	"event_agenda/model"
)

const DayKeyFormat = "2006-01-02"

// DayBounds returns the [00:00, next midnight) bounds of the day t falls on.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// EndOfDay returns the last second of the day t falls on.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// NextWeekday returns the first occurrence of weekday strictly after d when d
// already is that weekday, otherwise the next occurrence on or after d.
func NextWeekday(d time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday) - int(d.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return d.AddDate(0, 0, daysAhead)
}

// WeekDayRange computes the Monday-to-Sunday span for a week number: the
// first Monday on or after Jan 1 of the year, offset by (week-1) weeks. Both
// bounds are inclusive dates.
func WeekDayRange(year, week int) (time.Time, time.Time) {
	firstDay := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	lower := NextWeekday(firstDay, time.Monday).AddDate(0, 0, (week-1)*7)
	higher := lower.AddDate(0, 0, 6)
	return lower, higher
}

// MonthBounds returns [first of month, first of next month).
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// MonthOverlaps reports whether the [start, end] interval of an event touches
// the given month. Spanning events (start before the month, end after it)
// count, as do events merely starting or ending inside the month.
func MonthOverlaps(start time.Time, end *time.Time, year int, month time.Month) bool {
	mStart, mNext := MonthBounds(year, month)
	if start.Year() == year && start.Month() == month {
		return true
	}
	if end != nil {
		if end.Year() == year && end.Month() == month {
			return true
		}
		if start.Before(mStart) && !end.Before(mNext) {
			return true
		}
	}
	return false
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// MatchesDay reports whether an event belongs to the given calendar day,
// either by its own start or by any of its periods' from-dates.
func MatchesDay(event model.Event, day time.Time) bool {
	if SameDay(event.Start, day) {
		return true
	}
	for _, p := range event.Periods {
		if SameDay(p.DateFrom, day) {
			return true
		}
	}
	return false
}

// UpcomingOrOngoing reports whether an event is still ahead of now or has an
// end that is. Fully past events (start and end both behind now) fail.
func UpcomingOrOngoing(event model.Event, now time.Time) bool {
	if event.Start.After(now) {
		return true
	}
	return event.End != nil && event.End.After(now)
}
