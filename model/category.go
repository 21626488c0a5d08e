package model

type EventCategory struct {
	DTO
	Name        string  `gorm:"size:512;not null" validate:"required" json:"name"`
	Description string  `json:"description"`
	Events      []Event `gorm:"foreignKey:CategoryId" json:"events,omitempty"`
}

type CreateCategoryInput struct {
	Name        string `validate:"required" json:"name"`
	Description string `json:"description"`
}

type EditCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
