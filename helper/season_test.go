package helper

import (
	"testing"
	"time"

	"event_agenda/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestSeasonWindow(t *testing.T) {
	start, end := SeasonWindow(2023)
	if !start.Equal(date(2023, time.July, 31)) {
		t.Errorf("start = %v, want 2023-07-31", start)
	}
	if !end.Equal(date(2024, time.August, 1)) {
		t.Errorf("end = %v, want 2024-08-01", end)
	}
}

func TestSeasonTitle(t *testing.T) {
	if got := SeasonTitle(2023); got != "Season 2023-2024" {
		t.Errorf("title = %q", got)
	}
}

func TestSeasonYearFor(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int
	}{
		{date(2024, time.January, 15), 2023},
		{date(2024, time.July, 30), 2023},
		{date(2024, time.July, 31), 2024},
		{date(2024, time.December, 1), 2024},
	}
	for _, tc := range cases {
		if got := SeasonYearFor(tc.in); got != tc.want {
			t.Errorf("SeasonYearFor(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestEffectiveEnd(t *testing.T) {
	start, end := SeasonWindow(2023)
	season := &model.Season{Start: start, End: end}

	// Browsing the running season clips to today.
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	got := EffectiveEnd(season, now)
	if !SameDay(got, now) || got.Hour() != 23 {
		t.Errorf("current season end = %v, want end of today", got)
	}

	// A past season keeps its nominal end.
	later := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	got = EffectiveEnd(season, later)
	if !SameDay(got, end) {
		t.Errorf("past season end = %v, want end of %v", got, end)
	}

	// Today past the nominal end but still inside the end year must not
	// widen the window, or the finished season would absorb the next one's
	// events.
	justAfter := time.Date(2024, time.September, 15, 9, 0, 0, 0, time.UTC)
	got = EffectiveEnd(season, justAfter)
	if !SameDay(got, end) {
		t.Errorf("finished season end = %v, want end of %v", got, end)
	}
}

func TestResolveSeasonIdempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Season{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	first, err := ResolveSeason(db, 2020)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	if first.Title != "Season 2020-2021" {
		t.Errorf("title = %q", first.Title)
	}
	start, end := SeasonWindow(2020)
	if !first.Start.Equal(start) || !first.End.Equal(end) {
		t.Errorf("window = [%v, %v], want [%v, %v]", first.Start, first.End, start, end)
	}

	second, err := ResolveSeason(db, 2020)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second resolve created a new season: id %d vs %d", second.ID, first.ID)
	}

	var count int64
	if err := db.Model(&model.Season{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("season rows = %d, want 1", count)
	}
}
