package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/advertisement"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type AdvertisementGormRepository struct {
	GormStore[models.Advertisement]
}

func NewAdvertisementGormRepository(db *gorm.DB) *AdvertisementGormRepository {
	return &AdvertisementGormRepository{
		GormStore: NewGormStore[models.Advertisement](db, httperr.ErrNotFound("advertisement_not_found", "Advertisement not found")),
	}
}

func (r *AdvertisementGormRepository) Create(ctx context.Context, ad *models.Advertisement) error {
	return r.Insert(ctx, ad)
}

func (r *AdvertisementGormRepository) ListPublic(ctx context.Context) ([]models.Advertisement, error) {
	return r.List(ctx,
		withStatus(string(domain.StatusActive)),
		func(db *gorm.DB) *gorm.DB {
			return db.Where("payment_status = ?", string(domain.PaymentPaid))
		},
	)
}

func (r *AdvertisementGormRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Advertisement, error) {
	return r.List(ctx, ownedBy(ownerID))
}

func (r *AdvertisementGormRepository) ListByStatus(ctx context.Context, status string) ([]models.Advertisement, error) {
	return r.List(ctx, withStatus(status))
}

func (r *AdvertisementGormRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.Count(ctx, withStatus(status))
}

var _ domain.Repository = (*AdvertisementGormRepository)(nil)
