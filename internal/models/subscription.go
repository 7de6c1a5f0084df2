package models

import "time"

type Subscription struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index;not null" json:"user_id"`

	Plan        string  `gorm:"size:20;not null" json:"plan"`
	Amount      float64 `gorm:"not null" json:"amount"`
	ProviderRef *string `gorm:"size:100;uniqueIndex" json:"provider_ref,omitempty"`
	CheckoutURL *string `gorm:"size:500" json:"checkout_url,omitempty"`
	Status      string  `gorm:"size:20;index;not null;default:'pending'" json:"status"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}
