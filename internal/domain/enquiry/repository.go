package enquiry

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Enquiry) error
	FindByID(ctx context.Context, id string) (*models.Enquiry, error)
	ListByStatus(ctx context.Context, status string) ([]models.Enquiry, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Enquiry, error)
	Recent(ctx context.Context, limit int) ([]models.Enquiry, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error)
}
