package helper

import (
	"testing"
	"time"

	"event_agenda/model"
)

func TestMaterializeChild(t *testing.T) {
	parentLocation := uint(5)
	parentBrochure := "https://cdn.example.org/parent.pdf"
	parent := &model.Event{
		DTO:         model.DTO{ID: 1},
		Title:       "Recurring Concert",
		Content:     "Full programme",
		Status:      "PUBLISHED",
		UserId:      7,
		LocationId:  &parentLocation,
		Location:    &model.EventLocation{Title: "Main Hall"},
		BrochureUrl: &parentBrochure,
	}

	sub := "Night two"
	child := &model.Event{
		DTO:      model.DTO{ID: 2},
		Title:    "placeholder",
		SubTitle: &sub,
		Status:   "DRAFT",
		UserId:   99,
		Start:    time.Date(2024, time.June, 2, 20, 0, 0, 0, time.UTC),
	}

	got := MaterializeChild(child, parent)

	if got.Title != parent.Title || got.Content != parent.Content {
		t.Error("title and content must come from the parent")
	}
	if got.Status != "PUBLISHED" || got.UserId != 7 {
		t.Error("publication state and owner must come from the parent")
	}
	if got.LocationId == nil || *got.LocationId != parentLocation {
		t.Error("child without a location inherits the parent's")
	}
	if got.BrochureUrl == nil || *got.BrochureUrl != parentBrochure {
		t.Error("child without a brochure inherits the parent's")
	}
	if got.SubTitle == nil || *got.SubTitle != sub {
		t.Error("the child's own sub-title must survive")
	}
	if !got.Start.Equal(child.Start) {
		t.Error("the child's own dates must survive")
	}
	// Derivation is read-only.
	if child.Title != "placeholder" || child.Status != "DRAFT" {
		t.Error("the stored child must not be mutated")
	}
}

func TestMaterializeChildKeepsOwnLocation(t *testing.T) {
	parentLocation := uint(5)
	childLocation := uint(9)
	parent := &model.Event{LocationId: &parentLocation}
	child := &model.Event{LocationId: &childLocation}

	got := MaterializeChild(child, parent)
	if got.LocationId == nil || *got.LocationId != childLocation {
		t.Error("child with a location of its own keeps it")
	}
}

func TestMaterializeAll(t *testing.T) {
	parent := &model.Event{
		DTO:     model.DTO{ID: 1},
		Title:   "Recurring Concert",
		Content: "Full programme",
		Status:  "PUBLISHED",
		UserId:  7,
	}
	child := model.Event{
		DTO:      model.DTO{ID: 2},
		Title:    "placeholder",
		Status:   "DRAFT",
		UserId:   99,
		ParentId: &parent.ID,
		Parent:   parent,
		Start:    time.Date(2024, time.June, 2, 20, 0, 0, 0, time.UTC),
	}
	standalone := model.Event{
		DTO:   model.DTO{ID: 3},
		Title: "One-off Show",
		Start: time.Date(2024, time.June, 5, 20, 0, 0, 0, time.UTC),
	}

	got := MaterializeAll(model.Events{child, standalone})
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	// A child must surface in collections under its parent's identity, not
	// its stored placeholder.
	if got[0].Title != "Recurring Concert" || got[0].UserId != 7 || got[0].Status != "PUBLISHED" {
		t.Errorf("child listed as %q/%d/%s, want parent identity", got[0].Title, got[0].UserId, got[0].Status)
	}
	if !got[0].Start.Equal(child.Start) {
		t.Error("the child's own schedule must survive")
	}
	if got[1].Title != "One-off Show" {
		t.Errorf("standalone event changed to %q", got[1].Title)
	}
}

func TestMaterializeChildNilParent(t *testing.T) {
	child := &model.Event{DTO: model.DTO{ID: 3}, Title: "standalone"}
	if got := MaterializeChild(child, nil); got != child {
		t.Error("no parent means the event is returned as-is")
	}
}
