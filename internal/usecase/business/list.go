package business

import (
	"context"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type ListBusinesses struct {
	repo domain.Repository
}

func NewListBusinesses(repo domain.Repository) *ListBusinesses {
	return &ListBusinesses{repo: repo}
}

// Public lists active listings. The filter can only narrow the result.
func (uc *ListBusinesses) Public(ctx context.Context, f domain.Filter) ([]models.Business, error) {
	return uc.repo.ListPublic(ctx, f)
}

func (uc *ListBusinesses) Mine(ctx context.Context, ownerID string) ([]models.Business, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
