package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/subscription"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type SubscriptionGormRepository struct {
	GormStore[models.Subscription]
}

func NewSubscriptionGormRepository(db *gorm.DB) *SubscriptionGormRepository {
	return &SubscriptionGormRepository{
		GormStore: NewGormStore[models.Subscription](db, httperr.ErrNotFound("subscription_not_found", "Subscription not found")),
	}
}

func (r *SubscriptionGormRepository) Create(ctx context.Context, s *models.Subscription) error {
	return r.Insert(ctx, s)
}

func (r *SubscriptionGormRepository) FindByProviderRef(ctx context.Context, ref string) (*models.Subscription, error) {
	var s models.Subscription
	err := r.db.WithContext(ctx).Where("provider_ref = ?", ref).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.notFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

var _ domain.Repository = (*SubscriptionGormRepository)(nil)
