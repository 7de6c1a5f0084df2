package advertisement

import (
	"context"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type ListAdvertisements struct {
	repo domain.Repository
}

func NewListAdvertisements(repo domain.Repository) *ListAdvertisements {
	return &ListAdvertisements{repo: repo}
}

// Public lists ads that are both approved and paid.
func (uc *ListAdvertisements) Public(ctx context.Context) ([]models.Advertisement, error) {
	return uc.repo.ListPublic(ctx)
}

func (uc *ListAdvertisements) Mine(ctx context.Context, ownerID string) ([]models.Advertisement, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
