package advertisement

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ad *models.Advertisement) error
	FindByID(ctx context.Context, id string) (*models.Advertisement, error)

	ListPublic(ctx context.Context) ([]models.Advertisement, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Advertisement, error)
	ListByStatus(ctx context.Context, status string) ([]models.Advertisement, error)
	CountByStatus(ctx context.Context, status string) (int64, error)

	Update(ctx context.Context, id string, cols map[string]any) (*models.Advertisement, error)
	Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error)
}
