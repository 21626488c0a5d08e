package helper

import (
	"errors"
	"time"

	"event_agenda/model"
)

// ErrNoEventsToIndex is returned when the day index is built over an empty
// event set. Callers must guard for that before asking for an index.
var ErrNoEventsToIndex = errors.New("no events to index")

// DayEntry is one day of the day-picker index.
type DayEntry struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
	Weekend  bool   `json:"weekend"`
}

// BuildDayIndex produces the contiguous day-by-day index between the earliest
// and latest date any event occurs at, by its own start or any period's
// from-date. Every calendar day of the span appears exactly once.
//
// When locationTitles is non-empty, the full event set still fixes the span
// bounds, but days are only enabled if an event at one of those locations
// occurs on them. A location set matching no event leaves every day disabled.
func BuildDayIndex(events []model.Event, locationTitles []string) ([]DayEntry, error) {
	allDates := map[string]time.Time{}
	filteredDates := map[string]time.Time{}

	wanted := map[string]bool{}
	for _, t := range locationTitles {
		wanted[t] = true
	}

	for _, event := range events {
		collectEventDates(allDates, event)
		if len(wanted) > 0 && event.Location != nil && wanted[event.Location.Title] {
			collectEventDates(filteredDates, event)
		}
	}
	if len(allDates) == 0 {
		return nil, ErrNoEventsToIndex
	}

	enabled := allDates
	if len(wanted) > 0 {
		enabled = filteredDates
	}

	var first, last time.Time
	for _, t := range allDates {
		day, _ := DayBounds(t)
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	var entries []DayEntry
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(DayKeyFormat)
		_, has := enabled[key]
		weekday := day.Weekday()
		entries = append(entries, DayEntry{
			Date:     key,
			Label:    dayLabel(day),
			Disabled: !has,
			Weekend:  weekday == time.Saturday || weekday == time.Sunday,
		})
	}
	return entries, nil
}

func collectEventDates(dates map[string]time.Time, event model.Event) {
	dates[event.Start.Format(DayKeyFormat)] = event.Start
	for _, period := range event.Periods {
		dates[period.DateFrom.Format(DayKeyFormat)] = period.DateFrom
	}
}

// dayLabel combines the abbreviated weekday name with the day of month,
// e.g. "Sat 2".
func dayLabel(day time.Time) string {
	return day.Format("Mon 2")
}
