package advertisement

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type CreateAdvertisement struct {
	repo domain.Repository
}

func NewCreateAdvertisement(repo domain.Repository) *CreateAdvertisement {
	return &CreateAdvertisement{repo: repo}
}

// Execute stores a pending, unpaid ad. The price is derived from the ad
// type and duration; clients cannot set it.
func (uc *CreateAdvertisement) Execute(
	ctx context.Context,
	ownerID string,
	req dto.CreateAdvertisementRequest,
) (*models.Advertisement, error) {

	price, ok := domain.Price(domain.AdType(req.AdType), req.Duration)
	if !ok {
		return nil, httperr.ErrValidation(map[string]string{"ad_type": "unknown ad type or duration"})
	}

	ad := &models.Advertisement{
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		Category:      strings.TrimSpace(req.Category),
		Location:      strings.TrimSpace(req.Location),
		ContactEmail:  strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		ContactPhone:  req.ContactPhone,
		WebsiteURL:    req.WebsiteURL,
		Budget:        req.Budget,
		Duration:      req.Duration,
		AdType:        req.AdType,
		Price:         price,
		Status:        string(domain.StatusPending),
		PaymentStatus: string(domain.PaymentPending),
	}

	if err := uc.repo.Create(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}
