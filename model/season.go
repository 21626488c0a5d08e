package model

import "time"

// Season is the Aug 1 - Jul 31 annual window used for archive browsing.
// Rows are created lazily by helper.ResolveSeason; the unique index on Start
// guarantees at most one season per start year even under concurrent
// get-or-create.
type Season struct {
	DTO
	Start time.Time `gorm:"uniqueIndex;not null" json:"start"`
	End   time.Time `gorm:"not null" json:"end"`
	Title string    `gorm:"size:64;not null" json:"title"`
}
