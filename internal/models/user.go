package models

import "time"

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Email        string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	FullName     string  `gorm:"size:120;not null" json:"full_name"`
	CompanyName  *string `gorm:"size:120" json:"company_name,omitempty"`
	Phone        *string `gorm:"size:30" json:"phone,omitempty"`
	UserType     string  `gorm:"size:20;not null;default:'buyer'" json:"user_type"`
	Verified     bool    `gorm:"default:false" json:"verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
