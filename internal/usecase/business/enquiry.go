package business

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type SendEnquiry struct {
	businesses domain.Repository
	enquiries  enquiry.Repository
}

func NewSendEnquiry(businesses domain.Repository, enquiries enquiry.Repository) *SendEnquiry {
	return &SendEnquiry{businesses: businesses, enquiries: enquiries}
}

// Execute records an enquiry or bid. Anonymous senders must leave contact
// details since there is no account to reply to.
func (uc *SendEnquiry) Execute(
	ctx context.Context,
	req dto.EnquiryRequest,
	sender *auth.Principal,
) (*models.Enquiry, error) {

	var contact *string
	if req.ContactInfo != nil {
		if c := strings.TrimSpace(*req.ContactInfo); c != "" {
			contact = &c
		}
	}

	if sender == nil && contact == nil {
		return nil, httperr.ErrValidation(map[string]string{
			"contact_info": "is required for anonymous enquiries",
		})
	}

	b, err := uc.businesses.FindByID(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !domain.IsPublic(b.Status) && sender.UserID() != b.OwnerID && !sender.IsAdmin() {
		return nil, errBusinessNotFound
	}

	e := &models.Enquiry{
		BusinessID:  b.ID,
		Type:        string(enquiry.TypeBusinessEnquiry),
		Message:     strings.TrimSpace(req.Message),
		ContactInfo: contact,
		BidAmount:   req.BidAmount,
		Status:      string(enquiry.StatusUnread),
	}
	if sender != nil {
		id := sender.UserID()
		e.UserID = &id
	}

	if err := uc.enquiries.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
