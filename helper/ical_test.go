package helper

import (
	"strings"
	"testing"
	"time"

	"event_agenda/config"
	"event_agenda/model"

	ics "github.com/arran4/golang-ical"
)

func testCfg() config.AgendaConfig {
	return config.AgendaConfig{
		SiteDomain:  "agenda.example.org",
		ShopURL:     "https://shop.example.org/",
		ShopItemURL: "https://shop.example.org/item/%d",
	}
}

func TestICalRoundTrip(t *testing.T) {
	end := time.Date(2024, time.June, 1, 22, 0, 0, 0, time.UTC)
	event := &model.Event{
		DTO:   model.DTO{ID: 42},
		Slug:  "summer-gala",
		Title: "Summer Gala",
		Start: time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC),
		End:   &end,
		Location: &model.EventLocation{
			Title:   "Main Hall",
			Address: "1 Concert Way",
		},
	}

	cal := MakeCalendar()
	AddICalEvent(cal, event, testCfg())

	parsed, err := ics.ParseCalendar(strings.NewReader(cal.Serialize()))
	if err != nil {
		t.Fatalf("ParseCalendar: %v", err)
	}
	events := parsed.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	e := events[0]

	if got := e.GetProperty(ics.ComponentPropertySummary).Value; got != "Summer Gala" {
		t.Errorf("SUMMARY = %q", got)
	}
	if got := e.GetProperty(ics.ComponentPropertyUniqueId).Value; got != "event-42@agenda.example.org" {
		t.Errorf("UID = %q", got)
	}
	if got := e.GetProperty(ics.ComponentPropertyLocation).Value; got != "1 Concert Way" {
		t.Errorf("LOCATION = %q", got)
	}
	start, err := e.GetStartAt()
	if err != nil {
		t.Fatalf("GetStartAt: %v", err)
	}
	if !start.Equal(event.Start) {
		t.Errorf("DTSTART = %v, want %v", start, event.Start)
	}
	endAt, err := e.GetEndAt()
	if err != nil {
		t.Fatalf("GetEndAt: %v", err)
	}
	if !endAt.Equal(end) {
		t.Errorf("DTEND = %v, want %v", endAt, end)
	}
}

func TestEventPath(t *testing.T) {
	publish := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	event := &model.Event{
		Slug:        "spring-recital",
		Start:       time.Date(2024, time.April, 1, 20, 0, 0, 0, time.UTC),
		PublishDate: &publish,
	}

	cases := []struct {
		format string
		want   string
	}{
		{"", "/events/spring-recital"},
		{"year", "/events/2024/spring-recital"},
		{"month", "/events/2024/03/spring-recital"},
		{"day", "/events/2024/03/05/spring-recital"},
	}
	for _, tc := range cases {
		cfg := testCfg()
		cfg.URLsDateFormat = tc.format
		if got := EventPath(event, cfg); got != tc.want {
			t.Errorf("format %q: path = %q, want %q", tc.format, got, tc.want)
		}
	}

	// Without a publish date the start date drives the path.
	event.PublishDate = nil
	cfg := testCfg()
	cfg.URLsDateFormat = "year"
	if got := EventPath(event, cfg); got != "/events/2024/spring-recital" {
		t.Errorf("path = %q", got)
	}
}

func TestShopURL(t *testing.T) {
	cfg := testCfg()

	external := 123
	event := &model.Event{ExternalId: &external}
	if got := ShopURL(event, cfg); got != "https://shop.example.org/item/123" {
		t.Errorf("item url = %q", got)
	}

	if got := ShopURL(&model.Event{}, cfg); got != "https://shop.example.org/" {
		t.Errorf("fallback url = %q", got)
	}
}

func TestDateDisplay(t *testing.T) {
	text := "Every Saturday in June"
	event := &model.Event{
		Start:    time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC),
		DateText: &text,
	}
	if got := DateDisplay(event); got != text {
		t.Errorf("display = %q, want the free-text override", got)
	}

	event.DateText = nil
	if got := DateDisplay(event); got != "Sat 1 Jun 2024 20:00" {
		t.Errorf("display = %q", got)
	}
}
