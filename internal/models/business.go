package models

import "time"

type Business struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID string `gorm:"size:36;index;not null" json:"owner_id"`

	Title        string  `gorm:"size:200;not null" json:"title"`
	Description  string  `gorm:"type:text;not null" json:"description"`
	Industry     string  `gorm:"size:100;index;not null" json:"industry"`
	BusinessType string  `gorm:"size:20;index;not null" json:"business_type"`
	Location     string  `gorm:"size:200;not null" json:"location"`
	AskingPrice  float64 `gorm:"not null" json:"asking_price"`

	Revenue         *float64 `json:"revenue,omitempty"`
	Profit          *float64 `json:"profit,omitempty"`
	Employees       *int     `json:"employees,omitempty"`
	EstablishedYear *int     `json:"established_year,omitempty"`
	WebsiteURL      *string  `gorm:"size:255" json:"website_url,omitempty"`

	FranchiseFee       *float64 `json:"franchise_fee,omitempty"`
	RoyaltyFee         *float64 `json:"royalty_fee,omitempty"`
	TerritoryAvailable *string  `gorm:"size:255" json:"territory_available,omitempty"`
	SupportTraining    *string  `gorm:"type:text" json:"support_training,omitempty"`

	Status   string `gorm:"size:20;index;not null;default:'pending'" json:"status"`
	Featured bool   `gorm:"default:false" json:"featured"`
	Views    int64  `gorm:"default:0" json:"views"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
