package helper

import (
	"fmt"
	"time"

	"event_agenda/model"

	"gorm.io/gorm"
)

// SeasonWindow computes the nominal window of the season starting in year:
// July 31 of that year up to August 1 of the next.
func SeasonWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.July, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.August, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

func SeasonTitle(year int) string {
	return fmt.Sprintf("Season %d-%d", year, year+1)
}

// ResolveSeason returns the season record starting in the given year,
// creating it on first use. The unique index on seasons.start makes the
// get-or-create safe under concurrency; on a lost race the conflicting
// insert is retried as a plain lookup.
func ResolveSeason(db *gorm.DB, year int) (*model.Season, error) {
	start, end := SeasonWindow(year)
	season := model.Season{Start: start, End: end, Title: SeasonTitle(year)}
	err := db.Where("start = ?", start).FirstOrCreate(&season).Error
	if err != nil {
		// Unique violation: another request created the row first.
		if ferr := db.Where("start = ?", start).First(&season).Error; ferr == nil {
			return &season, nil
		}
		return nil, err
	}
	return &season, nil
}

// SeasonYearFor maps an instant to the start year of the season containing
// it: dates before July 31 still belong to the season begun the year before.
func SeasonYearFor(t time.Time) int {
	boundary := time.Date(t.Year(), time.July, 31, 0, 0, 0, 0, t.Location())
	if t.Before(boundary) {
		return t.Year() - 1
	}
	return t.Year()
}

// EffectiveEnd is the upper bound used when querying a season's events. For
// the running season the end is clipped to the end of today so
// not-yet-occurred events don't show up in an archive browse. The clip only
// ever narrows the window: once today is past the season's nominal end, the
// nominal end stands, so a finished season never absorbs the next one's
// events.
func EffectiveEnd(season *model.Season, now time.Time) time.Time {
	nominal := EndOfDay(season.End)
	if today := EndOfDay(now); now.Year() >= season.Start.Year() && today.Before(nominal) {
		return today
	}
	return nominal
}
