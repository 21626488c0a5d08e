package model

import "time"

type EventStatus string

const (
	StatusDraft     EventStatus = "DRAFT"
	StatusPublished EventStatus = "PUBLISHED"
)

// Event is a publishable agenda item. A child event (ParentId set) models a
// variant showing of one production and inherits title/owner/content/location
// from its parent at read time, see helper.MaterializeChild.
type Event struct {
	DTO
	Slug        string      `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string      `gorm:"not null" validate:"required" json:"title"`
	SubTitle    *string     `json:"subTitle"`
	Content     string      `json:"content"`
	DateText    *string     `json:"dateText"` // free text overriding the computed date display
	Status      EventStatus `gorm:"size:20;not null;default:DRAFT" json:"status"`
	PublishDate *time.Time  `json:"publishDate"`
	ExpiryDate  *time.Time  `json:"expiryDate"`
	Start       time.Time   `gorm:"not null;index" validate:"required" json:"start"`
	End         *time.Time  `json:"end"` // nil or >= Start
	IsFull      bool        `gorm:"not null;default:false" json:"isFull"`
	ExternalId  *int        `json:"externalId"` // booking shop item id
	BrochureUrl *string     `json:"brochureUrl"`
	Rank        *int        `gorm:"index" json:"rank"` // primary sort key, null sorts last

	UserId     uint  `gorm:"index" json:"userId"`
	LocationId *uint `json:"locationId"`
	CategoryId *uint `json:"categoryId"`
	SeasonId   *uint `json:"seasonId"`
	ParentId   *uint `json:"parentId"`

	User     Account        `gorm:"foreignKey:UserId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"user"`
	Location *EventLocation `gorm:"foreignKey:LocationId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"location"`
	Category *EventCategory `gorm:"foreignKey:CategoryId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category"`
	Season   *Season        `gorm:"foreignKey:SeasonId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"season"`
	Parent   *Event         `gorm:"foreignKey:ParentId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent"`

	Periods []EventPeriod `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE" json:"periods"`
	Prices  []EventPrice  `gorm:"many2many:event_event_prices" json:"prices"`
	Tags    []Tag         `gorm:"many2many:event_tags" json:"tags"`
}

type Events []Event

// EventPeriod is an independent (date_from, date_to) recurrence of its event,
// e.g. a repeated showing. Owned by the event and deleted with it.
type EventPeriod struct {
	DTO
	EventId  uint       `gorm:"not null;index" json:"eventId"`
	DateFrom time.Time  `gorm:"not null" validate:"required" json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`
}

type PeriodInput struct {
	DateFrom time.Time  `validate:"required" json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`
}

type CreateEventInput struct {
	Title       string        `validate:"required" json:"title"`
	SubTitle    *string       `json:"subTitle"`
	Content     string        `json:"content"`
	DateText    *string       `json:"dateText"`
	Status      EventStatus   `validate:"omitempty,oneof=DRAFT PUBLISHED" json:"status"`
	PublishDate *time.Time    `json:"publishDate"`
	ExpiryDate  *time.Time    `json:"expiryDate"`
	Start       time.Time     `validate:"required" json:"start"`
	End         *time.Time    `json:"end"`
	IsFull      bool          `json:"isFull"`
	ExternalId  *int          `json:"externalId"`
	Rank        *int          `json:"rank"`
	LocationId  *uint         `json:"locationId"`
	CategoryId  *uint         `json:"categoryId"`
	ParentId    *uint         `json:"parentId"`
	Periods     []PeriodInput `validate:"omitempty,dive" json:"periods"`
	PriceIds    []uint        `json:"priceIds"`
	TagIds      []uint        `json:"tagIds"`
}

type EditEventInput struct {
	Title       *string        `json:"title"`
	SubTitle    *string        `json:"subTitle"`
	Content     *string        `json:"content"`
	DateText    *string        `json:"dateText"`
	Status      *EventStatus   `validate:"omitempty,oneof=DRAFT PUBLISHED" json:"status"`
	PublishDate *time.Time     `json:"publishDate"`
	ExpiryDate  *time.Time     `json:"expiryDate"`
	Start       *time.Time     `json:"start"`
	End         *time.Time     `json:"end"`
	IsFull      *bool          `json:"isFull"`
	ExternalId  *int           `json:"externalId"`
	Rank        *int           `json:"rank"`
	LocationId  *uint          `json:"locationId"`
	CategoryId  *uint          `json:"categoryId"`
	ParentId    *uint          `json:"parentId"`
	Periods     *[]PeriodInput `validate:"omitempty,dive" json:"periods"`
	PriceIds    *[]uint        `json:"priceIds"`
	TagIds      *[]uint        `json:"tagIds"`
}

type FilterEventInput struct {
	Pagination
	Tag        string   `query:"tag" json:"tag"`
	Year       int      `query:"year" json:"year"`
	Month      int      `query:"month" json:"month"`
	Day        int      `query:"day" json:"day"`
	Week       int      `query:"week" json:"week"`
	Location   string   `query:"location" json:"location"` // single location slug
	Locations  []string `query:"locations" json:"locations"`
	Categories []string `query:"categories" json:"categories"`
	Author     string   `query:"author" json:"author"`
}
