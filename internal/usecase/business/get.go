package business

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type GetBusiness struct {
	repo domain.Repository
}

func NewGetBusiness(repo domain.Repository) *GetBusiness {
	return &GetBusiness{repo: repo}
}

// Execute returns a listing as seen by viewer (nil for anonymous callers).
// Hidden listings look missing to everyone but their owner and admins.
// Reads by anyone but the owner count as a view.
func (uc *GetBusiness) Execute(ctx context.Context, id string, viewer *auth.Principal) (*models.Business, error) {
	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := viewer != nil && viewer.UserID() == b.OwnerID

	if !domain.IsPublic(b.Status) {
		if isOwner || viewer.IsAdmin() {
			return b, nil
		}
		return nil, errBusinessNotFound
	}

	if !isOwner {
		if err := uc.repo.IncrementViews(ctx, b.ID); err != nil {
			return nil, err
		}
		b.Views++
	}

	return b, nil
}
