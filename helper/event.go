package helper

import (
	"errors"
	"fmt"
	"time"

	"event_agenda/config"
	"event_agenda/model"

	"gorm.io/gorm"
)

// ErrNotFound marks unresolvable lookups inside the filter engine: unknown
// tag slug, location slug or username, and structurally invalid date parts.
// Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// FilterOptions is the conjunction of optional criteria an event listing can
// be narrowed by. Zero values mean "not filtered".
type FilterOptions struct {
	Tag            string   // tag slug, mutually exclusive with the exclusion list
	Year           int
	Month          int
	Day            int
	Week           int
	LocationSlug   string   // single location by slug (URL form)
	LocationTitles []string // multi location by title (filter form)
	CategoryNames  []string
	Author         string // owner username
	Staff          bool   // staff override bypasses the publication gate
	Now            time.Time
}

// FilterContext carries the entities the filter resolved on the way, for
// handlers that echo them back in the response.
type FilterContext struct {
	Tag      *model.Tag           `json:"tag,omitempty"`
	Location *model.EventLocation `json:"location,omitempty"`
	Author   *model.Account       `json:"author,omitempty"`
	DayDate  *time.Time           `json:"dayDate,omitempty"`
}

// VisibleEvents is the publication gate applied ahead of every other filter:
// only PUBLISHED events inside their publish window are eligible, unless the
// caller holds staff privilege.
func VisibleEvents(db *gorm.DB, staff bool, now time.Time) *gorm.DB {
	query := db.Model(&model.Event{})
	if staff {
		return query
	}
	return query.
		Where("events.status = ?", model.StatusPublished).
		Where("(events.publish_date IS NULL OR events.publish_date <= ?)", now).
		Where("(events.expiry_date IS NULL OR events.expiry_date > ?)", now)
}

// FilterEvents composes the event listing query from the given options. The
// returned query is unpaginated; callers count and paginate it themselves.
//
// Day-level filtering matches an event when either its own start or any of
// its periods' from-dates fall on the requested day; the period leg runs as
// a subquery so an event matched both ways still appears once. When none of
// tag/year/location/author is set the listing falls back to upcoming or
// ongoing events ordered by start.
func FilterEvents(db *gorm.DB, opts FilterOptions, cfg config.AgendaConfig) (*gorm.DB, *FilterContext, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	fctx := &FilterContext{}
	query := VisibleEvents(db, opts.Staff, now)

	if opts.Tag != "" {
		var tag model.Tag
		if err := db.Where("slug = ?", opts.Tag).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: tag %q", ErrNotFound, opts.Tag)
			}
			return nil, nil, err
		}
		fctx.Tag = &tag
		query = query.
			Joins("JOIN event_tags ON event_tags.event_id = events.id").
			Where("event_tags.tag_id = ?", tag.ID)
	} else if len(cfg.ExcludeTags) > 0 {
		query = query.Where(
			"events.id NOT IN (SELECT event_tags.event_id FROM event_tags JOIN tags ON tags.id = event_tags.tag_id WHERE tags.slug IN ?)",
			cfg.ExcludeTags)
	}

	if opts.Year != 0 {
		var err error
		query, fctx.DayDate, err = applyDateFilter(query, opts)
		if err != nil {
			return nil, nil, err
		}
	}

	if opts.LocationSlug != "" {
		var location model.EventLocation
		if err := db.Where("slug = ?", opts.LocationSlug).First(&location).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: location %q", ErrNotFound, opts.LocationSlug)
			}
			return nil, nil, err
		}
		fctx.Location = &location
		query = query.Where("events.location_id = ?", location.ID)
	}
	if len(opts.LocationTitles) > 0 {
		query = query.
			Joins("JOIN event_locations ON event_locations.id = events.location_id").
			Where("event_locations.title IN ?", opts.LocationTitles)
	}
	if len(opts.CategoryNames) > 0 {
		query = query.
			Joins("JOIN event_categories ON event_categories.id = events.category_id").
			Where("event_categories.name IN ?", opts.CategoryNames)
	}

	if opts.Author != "" {
		var author model.Account
		if err := db.Where("username = ?", opts.Author).First(&author).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: author %q", ErrNotFound, opts.Author)
			}
			return nil, nil, err
		}
		fctx.Author = &author
		query = query.Where("events.user_id = ?", author.ID)
	}

	noFilter := opts.Tag == "" && opts.Year == 0 && opts.LocationSlug == "" &&
		len(opts.LocationTitles) == 0 && opts.Author == ""
	if noFilter {
		query = query.
			Where("(events.start > ? OR events.end > ?)", now, now).
			Order("events.start ASC")
	} else {
		query = query.Order("events.rank ASC NULLS LAST, events.start ASC")
	}

	return query, fctx, nil
}

func applyDateFilter(query *gorm.DB, opts FilterOptions) (*gorm.DB, *time.Time, error) {
	if opts.Month != 0 {
		if opts.Month < 1 || opts.Month > 12 {
			return nil, nil, fmt.Errorf("%w: month %d", ErrNotFound, opts.Month)
		}
		if opts.Day != 0 {
			day := time.Date(opts.Year, time.Month(opts.Month), opts.Day, 0, 0, 0, 0, time.UTC)
			// time.Date normalizes overflows, e.g. Feb 30 becomes Mar 2.
			if day.Day() != opts.Day || int(day.Month()) != opts.Month {
				return nil, nil, fmt.Errorf("%w: day %d", ErrNotFound, opts.Day)
			}
			dayStart, dayEnd := DayBounds(day)
			query = query.Where(
				"((events.start >= ? AND events.start < ?) OR events.id IN (SELECT event_periods.event_id FROM event_periods WHERE event_periods.date_from >= ? AND event_periods.date_from < ?))",
				dayStart, dayEnd, dayStart, dayEnd)
			return query, &day, nil
		}
		monthStart, monthEnd := MonthBounds(opts.Year, time.Month(opts.Month))
		return query.Where("events.start >= ? AND events.start < ?", monthStart, monthEnd), nil, nil
	}
	if opts.Week != 0 {
		lower, higher := WeekDayRange(opts.Year, opts.Week)
		return query.Where("events.start >= ? AND events.start < ?", lower, higher.AddDate(0, 0, 1)), nil, nil
	}
	yearStart := time.Date(opts.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return query.Where("events.start >= ? AND events.start < ?", yearStart, yearStart.AddDate(1, 0, 0)), nil, nil
}

// ListTemplateCandidates builds the ordered template-selection list handed to
// the rendering collaborator, most specific first. The collaborator picks the
// first candidate that exists.
func ListTemplateCandidates(location *model.EventLocation, username, base string) []string {
	var candidates []string
	if location != nil {
		candidates = append(candidates, fmt.Sprintf("agenda/event_list_%s.html", location.Slug))
	}
	if username != "" {
		candidates = append(candidates, fmt.Sprintf("agenda/event_list_%s.html", username))
	}
	return append(candidates, base)
}
