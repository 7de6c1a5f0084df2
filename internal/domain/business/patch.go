package business

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinDescriptionLength = 50
	MinAskingPrice       = 1000
	MinEstablishedYear   = 1900
)

// Patch is the allow-list of listing fields a caller may change. Anything
// not named here is never written by an update.
type Patch struct {
	Title              *string
	Description        *string
	Industry           *string
	BusinessType       *string
	Location           *string
	AskingPrice        *float64
	Revenue            *float64
	Profit             *float64
	Employees          *int
	EstablishedYear    *int
	WebsiteURL         *string
	FranchiseFee       *float64
	RoyaltyFee         *float64
	TerritoryAvailable *string
	SupportTraining    *string

	// Featured is honoured for admins only.
	Featured *bool
}

// Columns returns the column set to merge into the stored listing.
func (p Patch) Columns(isAdmin bool) map[string]any {
	cols := map[string]any{}

	if p.Title != nil {
		cols["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Industry != nil {
		cols["industry"] = strings.TrimSpace(*p.Industry)
	}
	if p.BusinessType != nil {
		cols["business_type"] = *p.BusinessType
	}
	if p.Location != nil {
		cols["location"] = strings.TrimSpace(*p.Location)
	}
	if p.AskingPrice != nil {
		cols["asking_price"] = *p.AskingPrice
	}
	if p.Revenue != nil {
		cols["revenue"] = *p.Revenue
	}
	if p.Profit != nil {
		cols["profit"] = *p.Profit
	}
	if p.Employees != nil {
		cols["employees"] = *p.Employees
	}
	if p.EstablishedYear != nil {
		cols["established_year"] = *p.EstablishedYear
	}
	if p.WebsiteURL != nil {
		cols["website_url"] = *p.WebsiteURL
	}
	if p.FranchiseFee != nil {
		cols["franchise_fee"] = *p.FranchiseFee
	}
	if p.RoyaltyFee != nil {
		cols["royalty_fee"] = *p.RoyaltyFee
	}
	if p.TerritoryAvailable != nil {
		cols["territory_available"] = *p.TerritoryAvailable
	}
	if p.SupportTraining != nil {
		cols["support_training"] = *p.SupportTraining
	}
	if isAdmin && p.Featured != nil {
		cols["featured"] = *p.Featured
	}

	return cols
}

// ValidateEstablishedYear checks the founding year against the current year.
func ValidateEstablishedYear(year *int, now time.Time) (string, bool) {
	if year == nil {
		return "", true
	}
	if *year < MinEstablishedYear || *year > now.Year() {
		return fmt.Sprintf("must be between %d and %d", MinEstablishedYear, now.Year()), false
	}
	return "", true
}

func NewListingMessage(title string) string {
	return "New business listing: " + title
}
