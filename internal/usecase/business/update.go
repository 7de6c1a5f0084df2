package business

import (
	"context"
	"time"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type UpdateBusiness struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUpdateBusiness(repo domain.Repository) *UpdateBusiness {
	return &UpdateBusiness{repo: repo, now: time.Now}
}

func (uc *UpdateBusiness) Execute(
	ctx context.Context,
	id string,
	patch domain.Patch,
	actor *auth.Principal,
) (*models.Business, error) {

	b, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.UserID() != b.OwnerID && !actor.IsAdmin() {
		return nil, errNotOwner
	}

	if msg, ok := domain.ValidateEstablishedYear(patch.EstablishedYear, uc.now()); !ok {
		return nil, httperr.ErrValidation(map[string]string{"established_year": msg})
	}

	return uc.repo.Update(ctx, id, patch.Columns(actor.IsAdmin()))
}
