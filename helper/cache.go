package helper

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"event_agenda/database"
)

const dayIndexTTL = 5 * time.Minute

func dayIndexKey(locationTitles []string) string {
	if len(locationTitles) == 0 {
		return "agenda:daypicker"
	}
	titles := append([]string(nil), locationTitles...)
	sort.Strings(titles)
	return "agenda:daypicker:" + strings.Join(titles, "|")
}

// CachedDayIndex looks the day-picker index up in Redis. Returns nil on miss
// or when caching is disabled.
func CachedDayIndex(ctx context.Context, locationTitles []string) []DayEntry {
	if database.Redis == nil {
		return nil
	}
	raw, err := database.Redis.Get(ctx, dayIndexKey(locationTitles)).Bytes()
	if err != nil {
		return nil
	}
	var entries []DayEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	return entries
}

func StoreDayIndex(ctx context.Context, locationTitles []string, entries []DayEntry) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	database.Redis.Set(ctx, dayIndexKey(locationTitles), raw, dayIndexTTL)
}

// InvalidateDayIndex drops every cached day-picker variant after an event
// write changes the relevant date set.
func InvalidateDayIndex(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	iter := database.Redis.Scan(ctx, 0, "agenda:daypicker*", 0).Iterator()
	for iter.Next(ctx) {
		database.Redis.Del(ctx, iter.Val())
	}
}
