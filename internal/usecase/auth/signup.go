package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
	"github.com/BruksfildServices01/bizmarket/internal/validators"
)

type SignUp struct {
	users  user.Repository
	authn  *auth.Authenticator
	emails *validators.DomainChecker
}

func NewSignUp(
	users user.Repository,
	authn *auth.Authenticator,
	emails *validators.DomainChecker,
) *SignUp {
	return &SignUp{
		users:  users,
		authn:  authn,
		emails: emails,
	}
}

func (uc *SignUp) Execute(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponse, error) {
	email := user.NormalizeEmail(req.Email)

	if !uc.emails.IsEmailDomainValid(email) {
		return nil, httperr.ErrValidation(map[string]string{
			"email": "domain does not accept email",
		})
	}

	exists, err := uc.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict("user_exists", "User already exists")
	}

	role := user.Role(req.UserData.UserType)
	if role == "" {
		role = user.RoleBuyer
	}
	if !user.SelfServiceRole(role) {
		return nil, httperr.ErrValidation(map[string]string{
			"userData.user_type": "must be one of: buyer, seller",
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, httperr.ErrInternal(err)
	}

	u := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     strings.TrimSpace(req.UserData.FullName),
		CompanyName:  req.UserData.CompanyName,
		Phone:        req.UserData.Phone,
		UserType:     string(role),
		Verified:     true,
	}

	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.authn.Login(ctx, u)
	if err != nil {
		return nil, httperr.ErrInternal(err)
	}

	return &dto.AuthResponse{User: u, Token: token}, nil
}
