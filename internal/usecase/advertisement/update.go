package advertisement

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type UpdateAdvertisement struct {
	repo domain.Repository
}

func NewUpdateAdvertisement(repo domain.Repository) *UpdateAdvertisement {
	return &UpdateAdvertisement{repo: repo}
}

func (uc *UpdateAdvertisement) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
	actor *auth.Principal,
) (*models.Advertisement, error) {

	ad, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.UserID() != ad.OwnerID && !actor.IsAdmin() {
		return nil, errNotOwner
	}

	return uc.repo.Update(ctx, id, patch.Columns())
}
