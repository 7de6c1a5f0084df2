package business

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type CreateBusiness struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateBusiness(repo domain.Repository) *CreateBusiness {
	return &CreateBusiness{repo: repo, now: time.Now}
}

// Execute stores a pending listing owned by ownerID and, in the same
// transaction, the new_listing enquiry that notifies admins.
func (uc *CreateBusiness) Execute(
	ctx context.Context,
	ownerID string,
	req dto.CreateBusinessRequest,
) (*models.Business, error) {

	if msg, ok := domain.ValidateEstablishedYear(req.EstablishedYear, uc.now()); !ok {
		return nil, httperr.ErrValidation(map[string]string{"established_year": msg})
	}

	b := &models.Business{
		OwnerID:            ownerID,
		Title:              strings.TrimSpace(req.Title),
		Description:        req.Description,
		Industry:           strings.TrimSpace(req.Industry),
		BusinessType:       req.BusinessType,
		Location:           strings.TrimSpace(req.Location),
		AskingPrice:        req.AskingPrice,
		Revenue:            req.Revenue,
		Profit:             req.Profit,
		Employees:          req.Employees,
		EstablishedYear:    req.EstablishedYear,
		WebsiteURL:         req.WebsiteURL,
		FranchiseFee:       req.FranchiseFee,
		RoyaltyFee:         req.RoyaltyFee,
		TerritoryAvailable: req.TerritoryAvailable,
		SupportTraining:    req.SupportTraining,
		Status:             string(domain.InitialStatus()),
		Featured:           false,
		Views:              0,
	}

	owner := ownerID
	notice := &models.Enquiry{
		Type:    string(enquiry.TypeNewListing),
		Message: domain.NewListingMessage(b.Title),
		UserID:  &owner,
		Status:  string(enquiry.StatusUnread),
	}

	if err := uc.repo.CreateWithNotice(ctx, b, notice); err != nil {
		return nil, err
	}

	return b, nil
}
