package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reads a single key from the environment, loading .env on first use.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Print("Error loading .env file")
	}
	return os.Getenv(key)
}

// AgendaConfig carries every setting the event filtering and rendering code
// needs. Handlers load it once at startup and pass it down explicitly, so
// none of the filter code reads the environment on its own.
type AgendaConfig struct {
	SiteDomain     string   // domain used for absolute URLs and iCalendar UIDs
	ExcludeTags    []string // tag slugs excluded when no tag filter is active
	EventPerPage   int
	MaxPagingLinks int
	URLsDateFormat string // "", "year", "month" or "day"
	ShopURL        string // booking shop landing page
	ShopItemURL    string // per-item booking URL template, %d -> external id
	HighlightCat   string // category name highlighted in listings
	PastEvents     bool   // include the past-events side list
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

// LoadAgendaConfig builds the AgendaConfig from the environment.
func LoadAgendaConfig() AgendaConfig {
	cfg := AgendaConfig{
		SiteDomain:     Config("SITE_DOMAIN"),
		EventPerPage:   envInt("EVENT_PER_PAGE", 10),
		MaxPagingLinks: envInt("MAX_PAGING_LINKS", 10),
		URLsDateFormat: os.Getenv("EVENT_URLS_DATE_FORMAT"),
		ShopURL:        os.Getenv("EVENT_SHOP_URL"),
		ShopItemURL:    os.Getenv("EVENT_SHOP_ITEM_URL"),
		HighlightCat:   os.Getenv("CATEGORY_TO_HIGHLIGHT"),
		PastEvents:     os.Getenv("PAST_EVENTS") == "true",
	}
	if cfg.SiteDomain == "" {
		cfg.SiteDomain = "localhost:8002"
	}
	if raw := os.Getenv("EVENT_EXCLUDE_TAG_LIST"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.ExcludeTags = append(cfg.ExcludeTags, t)
			}
		}
	}
	return cfg
}
