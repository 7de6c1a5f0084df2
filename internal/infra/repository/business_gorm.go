package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/business"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type BusinessGormRepository struct {
	GormStore[models.Business]
}

func NewBusinessGormRepository(db *gorm.DB) *BusinessGormRepository {
	return &BusinessGormRepository{
		GormStore: NewGormStore[models.Business](db, httperr.ErrNotFound("business_not_found", "Business not found")),
	}
}

func (r *BusinessGormRepository) CreateWithNotice(
	ctx context.Context,
	b *models.Business,
	notice *models.Enquiry,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		notice.BusinessID = b.ID
		return tx.Create(notice).Error
	})
}

func (r *BusinessGormRepository) ListPublic(ctx context.Context, f domain.Filter) ([]models.Business, error) {
	return r.List(ctx, withStatus(string(domain.StatusActive)), publicFilter(f))
}

func (r *BusinessGormRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Business, error) {
	return r.List(ctx, ownedBy(ownerID))
}

func (r *BusinessGormRepository) ListByStatus(ctx context.Context, status string) ([]models.Business, error) {
	return r.List(ctx, withStatus(status))
}

func (r *BusinessGormRepository) Recent(ctx context.Context, limit int) ([]models.Business, error) {
	return r.Latest(ctx, limit)
}

func (r *BusinessGormRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	return r.Count(ctx, withStatus(status))
}

// IncrementViews bumps the counter in SQL so concurrent readers never lose
// a view. updated_at is deliberately left alone.
func (r *BusinessGormRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&models.Business{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func publicFilter(f domain.Filter) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.Industry != "" {
			db = db.Where("industry = ?", f.Industry)
		}
		if f.BusinessType != "" {
			db = db.Where("business_type = ?", f.BusinessType)
		}
		if f.Location != "" {
			db = db.Where("LOWER(location) LIKE ? ESCAPE '!'", like(f.Location))
		}
		if f.Query != "" {
			q := like(f.Query)
			db = db.Where("LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!'", q, q)
		}
		if f.MinPrice != nil {
			db = db.Where("asking_price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			db = db.Where("asking_price <= ?", *f.MaxPrice)
		}
		if f.Featured != nil {
			db = db.Where("featured = ?", *f.Featured)
		}
		return db
	}
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// like builds a case-insensitive substring pattern for use with ESCAPE '!'.
// Wildcards in s match literally.
func like(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// Compile-time check
var _ domain.Repository = (*BusinessGormRepository)(nil)
