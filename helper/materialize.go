package helper

import (
	"event_agenda/model"

	"github.com/jinzhu/copier"
)

// MaterializeChild derives the effective fields of a child event from its
// parent at read time: title, owner, publication state and content always
// come from the parent, the location only when the child has none of its
// own. The child's sub-title, dates, periods and prices stay untouched.
// The result is a detached copy; nothing is written back.
func MaterializeChild(child *model.Event, parent *model.Event) *model.Event {
	if parent == nil {
		return child
	}
	effective := &model.Event{}
	copier.Copy(effective, child)
	effective.Title = parent.Title
	effective.UserId = parent.UserId
	effective.User = parent.User
	effective.Status = parent.Status
	effective.Content = parent.Content
	if effective.LocationId == nil {
		effective.LocationId = parent.LocationId
		effective.Location = parent.Location
	}
	if effective.BrochureUrl == nil {
		effective.BrochureUrl = parent.BrochureUrl
	}
	return effective
}

// MaterializeAll derives every child event in the collection from its
// preloaded parent, so listings and feeds show the same effective fields as
// the detail view. Events without a parent pass through untouched.
func MaterializeAll(events model.Events) model.Events {
	out := make(model.Events, len(events))
	for i := range events {
		out[i] = *MaterializeChild(&events[i], events[i].Parent)
	}
	return out
}
