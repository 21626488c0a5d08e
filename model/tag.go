package model

type Tag struct {
	DTO
	Slug   string  `gorm:"uniqueIndex;not null" json:"slug"`
	Name   string  `gorm:"not null" validate:"required" json:"name"`
	Events []Event `gorm:"many2many:event_tags" json:"events,omitempty"`
}

type CreateTagInput struct {
	Name string `validate:"required" json:"name"`
}
