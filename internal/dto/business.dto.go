package dto

import "github.com/BruksfildServices01/bizmarket/internal/domain/business"

type CreateBusinessRequest struct {
	Title        string  `json:"title" binding:"required,notblank,max=200"`
	Description  string  `json:"description" binding:"required,min=50"`
	Industry     string  `json:"industry" binding:"required,notblank,max=100"`
	BusinessType string  `json:"business_type" binding:"required,oneof=franchise acquisition partnership"`
	Location     string  `json:"location" binding:"required,notblank,max=200"`
	AskingPrice  float64 `json:"asking_price" binding:"required,gte=1000"`

	Revenue         *float64 `json:"revenue" binding:"omitempty,gte=0"`
	Profit          *float64 `json:"profit"`
	Employees       *int     `json:"employees" binding:"omitempty,gte=0"`
	EstablishedYear *int     `json:"established_year" binding:"omitempty,gte=1900"`
	WebsiteURL      *string  `json:"website_url" binding:"omitempty,url"`

	FranchiseFee       *float64 `json:"franchise_fee" binding:"omitempty,gte=0"`
	RoyaltyFee         *float64 `json:"royalty_fee" binding:"omitempty,gte=0,lte=100"`
	TerritoryAvailable *string  `json:"territory_available" binding:"omitempty,max=255"`
	SupportTraining    *string  `json:"support_training"`
}

// UpdateBusinessRequest lists every field a PUT may carry. Anything else in
// the body is ignored.
type UpdateBusinessRequest struct {
	Title        *string  `json:"title" binding:"omitempty,notblank,max=200"`
	Description  *string  `json:"description" binding:"omitempty,min=50"`
	Industry     *string  `json:"industry" binding:"omitempty,notblank,max=100"`
	BusinessType *string  `json:"business_type" binding:"omitempty,oneof=franchise acquisition partnership"`
	Location     *string  `json:"location" binding:"omitempty,notblank,max=200"`
	AskingPrice  *float64 `json:"asking_price" binding:"omitempty,gte=1000"`

	Revenue         *float64 `json:"revenue" binding:"omitempty,gte=0"`
	Profit          *float64 `json:"profit"`
	Employees       *int     `json:"employees" binding:"omitempty,gte=0"`
	EstablishedYear *int     `json:"established_year" binding:"omitempty,gte=1900"`
	WebsiteURL      *string  `json:"website_url" binding:"omitempty,url"`

	FranchiseFee       *float64 `json:"franchise_fee" binding:"omitempty,gte=0"`
	RoyaltyFee         *float64 `json:"royalty_fee" binding:"omitempty,gte=0,lte=100"`
	TerritoryAvailable *string  `json:"territory_available" binding:"omitempty,max=255"`
	SupportTraining    *string  `json:"support_training"`

	Featured *bool `json:"featured"`
}

func (r UpdateBusinessRequest) Patch() business.Patch {
	return business.Patch{
		Title:              r.Title,
		Description:        r.Description,
		Industry:           r.Industry,
		BusinessType:       r.BusinessType,
		Location:           r.Location,
		AskingPrice:        r.AskingPrice,
		Revenue:            r.Revenue,
		Profit:             r.Profit,
		Employees:          r.Employees,
		EstablishedYear:    r.EstablishedYear,
		WebsiteURL:         r.WebsiteURL,
		FranchiseFee:       r.FranchiseFee,
		RoyaltyFee:         r.RoyaltyFee,
		TerritoryAvailable: r.TerritoryAvailable,
		SupportTraining:    r.SupportTraining,
		Featured:           r.Featured,
	}
}

type EnquiryRequest struct {
	BusinessID  string   `json:"business_id" binding:"required"`
	Message     string   `json:"message" binding:"required,min=10,max=5000"`
	BidAmount   *float64 `json:"bid_amount" binding:"omitempty,gte=1000"`
	ContactInfo *string  `json:"contact_info" binding:"omitempty,max=255"`
}

// BusinessQuery is the public listing filter taken from the query string.
type BusinessQuery struct {
	Industry     string   `form:"industry" json:"industry"`
	BusinessType string   `form:"business_type" json:"business_type" binding:"omitempty,oneof=franchise acquisition partnership"`
	Location     string   `form:"location" json:"location"`
	Query        string   `form:"q" json:"q"`
	MinPrice     *float64 `form:"min_price" json:"min_price" binding:"omitempty,gte=0"`
	MaxPrice     *float64 `form:"max_price" json:"max_price" binding:"omitempty,gte=0"`
	Featured     *bool    `form:"featured" json:"featured"`
}

func (q BusinessQuery) Filter() business.Filter {
	return business.Filter{
		Industry:     q.Industry,
		BusinessType: q.BusinessType,
		Location:     q.Location,
		Query:        q.Query,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		Featured:     q.Featured,
	}
}
