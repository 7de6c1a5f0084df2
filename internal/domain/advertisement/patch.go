package advertisement

import "strings"

// Patch is the allow-list of ad fields an owner may change. Pricing inputs
// (budget, duration, ad_type) are fixed at creation.
type Patch struct {
	Title        *string
	Description  *string
	Category     *string
	Location     *string
	ContactEmail *string
	ContactPhone *string
	WebsiteURL   *string
}

func (p Patch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Title != nil {
		cols["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Category != nil {
		cols["category"] = strings.TrimSpace(*p.Category)
	}
	if p.Location != nil {
		cols["location"] = strings.TrimSpace(*p.Location)
	}
	if p.ContactEmail != nil {
		cols["contact_email"] = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		cols["contact_phone"] = *p.ContactPhone
	}
	if p.WebsiteURL != nil {
		cols["website_url"] = *p.WebsiteURL
	}
	return cols
}
