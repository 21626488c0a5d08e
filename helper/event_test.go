package helper

import (
	"testing"

	"event_agenda/model"
)

func TestListTemplateCandidates(t *testing.T) {
	location := &model.EventLocation{Slug: "main-hall"}
	base := "agenda/event_list.html"

	got := ListTemplateCandidates(location, "alice", base)
	want := []string{
		"agenda/event_list_main-hall.html",
		"agenda/event_list_alice.html",
		base,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate %d = %q, want %q", i, got[i], want[i])
		}
	}

	got = ListTemplateCandidates(nil, "", base)
	if len(got) != 1 || got[0] != base {
		t.Errorf("no filters should fall through to %q, got %v", base, got)
	}
}
