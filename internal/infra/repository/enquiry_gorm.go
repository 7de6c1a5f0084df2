package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/enquiry"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type EnquiryGormRepository struct {
	GormStore[models.Enquiry]
}

func NewEnquiryGormRepository(db *gorm.DB) *EnquiryGormRepository {
	return &EnquiryGormRepository{
		GormStore: NewGormStore[models.Enquiry](db, httperr.ErrNotFound("enquiry_not_found", "Enquiry not found")),
	}
}

func (r *EnquiryGormRepository) Create(ctx context.Context, e *models.Enquiry) error {
	return r.Insert(ctx, e)
}

func (r *EnquiryGormRepository) ListByStatus(ctx context.Context, status string) ([]models.Enquiry, error) {
	return r.List(ctx, withStatus(status))
}

func (r *EnquiryGormRepository) ListByBusiness(ctx context.Context, businessID string) ([]models.Enquiry, error) {
	return r.List(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("business_id = ?", businessID)
	})
}

func (r *EnquiryGormRepository) Recent(ctx context.Context, limit int) ([]models.Enquiry, error) {
	return r.Latest(ctx, limit)
}

func (r *EnquiryGormRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.Count(ctx, withStatus(status))
}

var _ domain.Repository = (*EnquiryGormRepository)(nil)
