package models

import "time"

type Enquiry struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	BusinessID string `gorm:"size:36;index;not null" json:"business_id"`
	Type       string `gorm:"size:30;not null" json:"type"`
	Message    string `gorm:"type:text;not null" json:"message"`

	UserID      *string  `gorm:"size:36;index" json:"user_id,omitempty"`
	ContactInfo *string  `gorm:"size:255" json:"contact_info,omitempty"`
	BidAmount   *float64 `json:"bid_amount,omitempty"`

	Status string `gorm:"size:20;index;not null;default:'unread'" json:"status"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
