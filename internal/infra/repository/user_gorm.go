package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type UserGormRepository struct {
	GormStore[models.User]
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{
		GormStore: NewGormStore[models.User](db, httperr.ErrNotFound("user_not_found", "User not found")),
	}
}

// Create relies on the unique email index to settle concurrent sign-ups
// that both passed the existence check.
func (r *UserGormRepository) Create(ctx context.Context, u *models.User) error {
	err := r.Insert(ctx, u)
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("user_exists", "User already exists")
	}
	return err
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.notFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.GormStore.Count(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("email = ?", email)
	})
	return n > 0, err
}

func (r *UserGormRepository) Count(ctx context.Context) (int64, error) {
	return r.GormStore.Count(ctx)
}

var _ domain.Repository = (*UserGormRepository)(nil)
