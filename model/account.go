package model

type Account struct {
	DTO
	Username     string  `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email        string  `json:"email"`
	Password     string  `gorm:"not null" validate:"required,min=6,max=50" json:"-"`
	AccessToken  string  `gorm:"-" json:"accessToken,omitempty"`
	RefreshToken string  `gorm:"-" json:"refreshToken,omitempty"`
	Active       bool    `gorm:"not null;default:true" json:"active"`
	IsStaff      bool    `gorm:"not null;default:false" json:"isStaff"`
	Events       []Event `gorm:"foreignKey:UserId" json:"events,omitempty"`
}

type Accounts []Account

type CreateAccountInput struct {
	Username string `validate:"required,min=3,max=50" json:"username"`
	Email    string `validate:"omitempty,email" json:"email"`
	Password string `validate:"required,min=6,max=50" json:"password"`
	IsStaff  bool   `json:"isStaff"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}
