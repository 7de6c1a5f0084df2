package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
)

var errInvalidCredentials = httperr.ErrUnauthorized("invalid_credentials", "Invalid credentials")

type SignIn struct {
	users user.Repository
	authn *auth.Authenticator
}

func NewSignIn(users user.Repository, authn *auth.Authenticator) *SignIn {
	return &SignIn{users: users, authn: authn}
}

func (uc *SignIn) Execute(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponse, error) {
	u, err := uc.users.FindByEmail(ctx, user.NormalizeEmail(req.Email))
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := uc.authn.Login(ctx, u)
	if err != nil {
		return nil, httperr.ErrInternal(err)
	}

	return &dto.AuthResponse{User: u, Token: token}, nil
}
