package user

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/bizmarket/internal/models"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

const MinPasswordLength = 6

// SelfServiceRole reports whether a role may be picked at sign-up.
func SelfServiceRole(r Role) bool {
	return r == RoleBuyer || r == RoleSeller
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
