package dto

import "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"

type CreateAdvertisementRequest struct {
	Title        string  `json:"title" binding:"required,notblank,max=200"`
	Description  string  `json:"description" binding:"required,min=50"`
	Category     string  `json:"category" binding:"required,notblank,max=100"`
	Location     string  `json:"location" binding:"required,notblank,max=200"`
	ContactEmail string  `json:"contact_email" binding:"required,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
	WebsiteURL   *string `json:"website_url" binding:"omitempty,url"`

	Budget   float64 `json:"budget" binding:"required,gte=100"`
	Duration int     `json:"duration" binding:"required,oneof=30 60 90"`
	AdType   string  `json:"ad_type" binding:"required,oneof=premium featured spotlight"`
}

type UpdateAdvertisementRequest struct {
	Title        *string `json:"title" binding:"omitempty,notblank,max=200"`
	Description  *string `json:"description" binding:"omitempty,min=50"`
	Category     *string `json:"category" binding:"omitempty,notblank,max=100"`
	Location     *string `json:"location" binding:"omitempty,notblank,max=200"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=30"`
	WebsiteURL   *string `json:"website_url" binding:"omitempty,url"`
}

func (r UpdateAdvertisementRequest) Patch() advertisement.Patch {
	return advertisement.Patch{
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Location:     r.Location,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		WebsiteURL:   r.WebsiteURL,
	}
}

// PaymentSuccessRequest is the client's claim that a payment went through.
// It is checked against the provider before anything is recorded.
type PaymentSuccessRequest struct {
	AdID      string `json:"ad_id" binding:"required"`
	PaymentID string `json:"payment_intent_id" binding:"required"`
}

type PaymentResult struct {
	Message       string `json:"message"`
	Applied       bool   `json:"applied"`
	Advertisement any    `json:"advertisement"`
}
