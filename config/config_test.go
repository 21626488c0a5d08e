package config

import "testing"

func TestLoadAgendaConfigDefaults(t *testing.T) {
	t.Setenv("SITE_DOMAIN", "")
	t.Setenv("EVENT_PER_PAGE", "")
	t.Setenv("EVENT_EXCLUDE_TAG_LIST", "")

	cfg := LoadAgendaConfig()
	if cfg.SiteDomain != "localhost:8002" {
		t.Errorf("SiteDomain = %q", cfg.SiteDomain)
	}
	if cfg.EventPerPage != 10 {
		t.Errorf("EventPerPage = %d, want 10", cfg.EventPerPage)
	}
	if len(cfg.ExcludeTags) != 0 {
		t.Errorf("ExcludeTags = %v, want empty", cfg.ExcludeTags)
	}
}

func TestLoadAgendaConfigExcludeList(t *testing.T) {
	t.Setenv("EVENT_EXCLUDE_TAG_LIST", "private, internal ,, draft-only")

	cfg := LoadAgendaConfig()
	want := []string{"private", "internal", "draft-only"}
	if len(cfg.ExcludeTags) != len(want) {
		t.Fatalf("ExcludeTags = %v, want %v", cfg.ExcludeTags, want)
	}
	for i := range want {
		if cfg.ExcludeTags[i] != want[i] {
			t.Errorf("ExcludeTags[%d] = %q, want %q", i, cfg.ExcludeTags[i], want[i])
		}
	}
}

func TestEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("EVENT_PER_PAGE", "not-a-number")
	if got := envInt("EVENT_PER_PAGE", 10); got != 10 {
		t.Errorf("envInt = %d, want fallback 10", got)
	}
	t.Setenv("EVENT_PER_PAGE", "-3")
	if got := envInt("EVENT_PER_PAGE", 10); got != 10 {
		t.Errorf("envInt = %d, want fallback for non-positive", got)
	}
}
