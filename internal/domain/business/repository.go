package business

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

// Filter narrows the public listing. Visibility (status = active) is
// enforced by the repository regardless of what is set here.
type Filter struct {
	Industry     string
	BusinessType string
	Location     string
	Query        string
	MinPrice     *float64
	MaxPrice     *float64
	Featured     *bool
}

type Repository interface {
	// CreateWithNotice persists the listing and its new-listing enquiry in
	// one transaction.
	CreateWithNotice(ctx context.Context, b *models.Business, notice *models.Enquiry) error

	FindByID(ctx context.Context, id string) (*models.Business, error)

	ListPublic(ctx context.Context, f Filter) ([]models.Business, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Business, error)
	ListByStatus(ctx context.Context, status string) ([]models.Business, error)
	Recent(ctx context.Context, limit int) ([]models.Business, error)
	CountByStatus(ctx context.Context, status string) (int64, error)

	Update(ctx context.Context, id string, cols map[string]any) (*models.Business, error)
	Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error)
	IncrementViews(ctx context.Context, id string) error
}
