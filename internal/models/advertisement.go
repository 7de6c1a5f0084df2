package models

import "time"

type Advertisement struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:36;index;not null" json:"owner_id"`

	Title        string  `gorm:"size:200;not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Category     string  `gorm:"size:100;not null" json:"category"`
	Location     string  `gorm:"size:200;not null" json:"location"`
	ContactEmail string  `gorm:"size:255;not null" json:"contact_email"`
	ContactPhone *string `gorm:"size:30" json:"contact_phone,omitempty"`
	WebsiteURL   *string `gorm:"size:255" json:"website_url,omitempty"`

	Budget   float64 `gorm:"not null" json:"budget"`
	Duration int     `gorm:"not null" json:"duration"`
	AdType   string  `gorm:"size:20;not null" json:"ad_type"`
	Price    float64 `gorm:"not null" json:"price"`

	Status        string  `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	PaymentStatus string  `gorm:"size:20;index;not null;default:'pending'" json:"payment_status"`
	PaymentRef    *string `gorm:"size:100;uniqueIndex" json:"payment_ref,omitempty"`
	CheckoutRef   *string `gorm:"size:100" json:"-"`
	CheckoutURL   *string `gorm:"size:500" json:"-"`

	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
}
