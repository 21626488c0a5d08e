package helper

import (
	"testing"
	"time"

	"event_agenda/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekDayRange(t *testing.T) {
	// Jan 1 2024 is a Monday, so week 1 starts there.
	lower, higher := WeekDayRange(2024, 1)
	if !lower.Equal(date(2024, time.January, 1)) {
		t.Errorf("week 1 lower = %v, want 2024-01-01", lower)
	}
	if !higher.Equal(date(2024, time.January, 7)) {
		t.Errorf("week 1 higher = %v, want 2024-01-07", higher)
	}

	// Jan 1 2025 is a Wednesday, week 1 starts at the first Monday after.
	lower, _ = WeekDayRange(2025, 1)
	if !lower.Equal(date(2025, time.January, 6)) {
		t.Errorf("2025 week 1 lower = %v, want 2025-01-06", lower)
	}

	lower, higher = WeekDayRange(2024, 10)
	if !lower.Equal(date(2024, time.March, 4)) || !higher.Equal(date(2024, time.March, 10)) {
		t.Errorf("week 10 = [%v, %v], want [2024-03-04, 2024-03-10]", lower, higher)
	}
}

func TestMonthOverlaps(t *testing.T) {
	end := func(y int, m time.Month, d int) *time.Time {
		e := date(y, m, d)
		return &e
	}

	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
		year  int
		month time.Month
		want  bool
	}{
		{"starts in month", date(2024, time.March, 15), nil, 2024, time.March, true},
		{"ends in month", date(2024, time.February, 20), end(2024, time.March, 2), 2024, time.March, true},
		{"spans month", date(2024, time.February, 1), end(2024, time.April, 30), 2024, time.March, true},
		{"before month", date(2024, time.January, 5), end(2024, time.February, 5), 2024, time.March, false},
		{"after month", date(2024, time.April, 1), nil, 2024, time.March, false},
		{"same month other year", date(2023, time.March, 15), nil, 2024, time.March, false},
	}
	for _, tc := range cases {
		if got := MonthOverlaps(tc.start, tc.end, tc.year, tc.month); got != tc.want {
			t.Errorf("%s: MonthOverlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesDay(t *testing.T) {
	event := model.Event{
		Start: time.Date(2024, time.June, 1, 20, 30, 0, 0, time.UTC),
		Periods: []model.EventPeriod{
			{DateFrom: time.Date(2024, time.June, 8, 20, 30, 0, 0, time.UTC)},
			{DateFrom: time.Date(2024, time.June, 15, 20, 30, 0, 0, time.UTC)},
		},
	}

	if !MatchesDay(event, date(2024, time.June, 1)) {
		t.Error("event should match its own start day")
	}
	if !MatchesDay(event, date(2024, time.June, 8)) {
		t.Error("event should match a period day")
	}
	if MatchesDay(event, date(2024, time.June, 9)) {
		t.Error("event should not match a day with no occurrence")
	}
}

func TestUpcomingOrOngoing(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	past := date(2024, time.June, 1)
	future := date(2024, time.July, 1)

	if !UpcomingOrOngoing(model.Event{Start: future}, now) {
		t.Error("future start should be upcoming")
	}
	if !UpcomingOrOngoing(model.Event{Start: past, End: &future}, now) {
		t.Error("started event with a future end should be ongoing")
	}
	if UpcomingOrOngoing(model.Event{Start: past}, now) {
		t.Error("past event without an end should be excluded")
	}
	pastEnd := date(2024, time.June, 10)
	if UpcomingOrOngoing(model.Event{Start: past, End: &pastEnd}, now) {
		t.Error("fully past event should be excluded")
	}
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC))
	if !start.Equal(date(2024, time.March, 15)) {
		t.Errorf("start = %v, want midnight", start)
	}
	if !end.Equal(date(2024, time.March, 16)) {
		t.Errorf("end = %v, want next midnight", end)
	}
}
