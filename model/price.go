package model

// EventPrice lists pricings shared between events, highest value first.
type EventPrice struct {
	DTO
	Value  float64 `gorm:"not null" validate:"required" json:"value"`
	Unit   string  `gorm:"size:16;not null" validate:"required" json:"unit"`
	Events []Event `gorm:"many2many:event_event_prices" json:"events,omitempty"`
}

type CreatePriceInput struct {
	Value float64 `validate:"required,gt=0" json:"value"`
	Unit  string  `validate:"required" json:"unit"`
}

type EditPriceInput struct {
	Value *float64 `validate:"omitempty,gt=0" json:"value"`
	Unit  *string  `json:"unit"`
}
