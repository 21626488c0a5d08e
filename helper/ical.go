package helper

import (
	"fmt"
	"strings"

	"event_agenda/config"
	"event_agenda/model"

	ics "github.com/arran4/golang-ical"
)

const Version = "1.0.0"

// MakeCalendar creates the VCALENDAR container used by every iCalendar
// response. VERSION 2.0 refers to the format, not this software.
func MakeCalendar() *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId(fmt.Sprintf("-//event-agenda//NONSGML V%s//EN", Version))
	cal.SetVersion("2.0")
	return cal
}

// AddICalEvent appends one VEVENT for the event to cal. The UID is stable
// across re-exports so calendar clients can deduplicate and update entries.
func AddICalEvent(cal *ics.Calendar, event *model.Event, cfg config.AgendaConfig) {
	uid := fmt.Sprintf("event-%d@%s", event.ID, cfg.SiteDomain)
	e := cal.AddEvent(uid)
	e.SetSummary(event.Title)
	e.SetURL(EventAbsoluteURL(event, cfg))
	if event.Location != nil {
		e.SetLocation(event.Location.Address)
	}
	e.SetDtStampTime(event.Start)
	e.SetStartAt(event.Start)
	if event.End != nil {
		e.SetEndAt(*event.End)
	}
}

// EventAbsoluteURL builds the canonical absolute detail URL. The
// EVENT_URLS_DATE_FORMAT setting controls how much of the event's publish
// date is embedded into the path, from just the year down to the full date.
func EventAbsoluteURL(event *model.Event, cfg config.AgendaConfig) string {
	return fmt.Sprintf("http://%s%s", cfg.SiteDomain, EventPath(event, cfg))
}

func EventPath(event *model.Event, cfg config.AgendaConfig) string {
	date := event.Start
	if event.PublishDate != nil {
		date = *event.PublishDate
	}
	var parts []string
	switch cfg.URLsDateFormat {
	case "day":
		parts = []string{fmt.Sprintf("%d", date.Year()), fmt.Sprintf("%02d", int(date.Month())), fmt.Sprintf("%02d", date.Day())}
	case "month":
		parts = []string{fmt.Sprintf("%d", date.Year()), fmt.Sprintf("%02d", int(date.Month()))}
	case "year":
		parts = []string{fmt.Sprintf("%d", date.Year())}
	}
	parts = append(parts, event.Slug)
	return "/events/" + strings.Join(parts, "/")
}

// ShopURL builds the booking link for an event carrying an external shop id.
// The configured item template is %d-substituted with the external id; events
// without one fall back to the shop landing page.
func ShopURL(event *model.Event, cfg config.AgendaConfig) string {
	if event.ExternalId != nil && cfg.ShopItemURL != "" {
		return fmt.Sprintf(cfg.ShopItemURL, *event.ExternalId)
	}
	return cfg.ShopURL
}

// DateDisplay returns the text shown for an event's date: the free-text
// override when the editor set one, otherwise the computed range.
func DateDisplay(event *model.Event) string {
	if event.DateText != nil && *event.DateText != "" {
		return *event.DateText
	}
	const layout = "Mon 2 Jan 2006 15:04"
	if event.End != nil {
		return event.Start.Format(layout) + " - " + event.End.Format(layout)
	}
	return event.Start.Format(layout)
}
