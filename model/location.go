package model

// EventLocation is a venue an event takes place at. Lat and Lon are either
// both set or both null; when absent they are geocoded from
// MappableLocation at save time.
type EventLocation struct {
	DTO
	Slug             string   `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string   `gorm:"not null" validate:"required" json:"title"`
	Address          string   `gorm:"not null" validate:"required" json:"address"`
	PostalCode       string   `gorm:"size:16" json:"postalCode"`
	City             string   `gorm:"size:255" json:"city"`
	Room             *string  `json:"room"`
	MappableLocation string   `gorm:"size:128" json:"mappableLocation"`
	Lat              *float64 `json:"lat"`
	Lon              *float64 `json:"lon"`
	Events           []Event  `gorm:"foreignKey:LocationId" json:"events,omitempty"`
}

type EventLocations []EventLocation

type CreateLocationInput struct {
	Title            string   `validate:"required" json:"title"`
	Address          string   `validate:"required" json:"address"`
	PostalCode       string   `json:"postalCode"`
	City             string   `json:"city"`
	Room             *string  `json:"room"`
	MappableLocation string   `json:"mappableLocation"`
	Lat              *float64 `json:"lat"`
	Lon              *float64 `json:"lon"`
}

type EditLocationInput struct {
	Title            *string  `json:"title"`
	Address          *string  `json:"address"`
	PostalCode       *string  `json:"postalCode"`
	City             *string  `json:"city"`
	Room             *string  `json:"room"`
	MappableLocation *string  `json:"mappableLocation"`
	Lat              *float64 `json:"lat"`
	Lon              *float64 `json:"lon"`
}
