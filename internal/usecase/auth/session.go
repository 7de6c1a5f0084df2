package auth

import (
	"context"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/dto"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
)

// Verify resolves a bearer header to the user it belongs to.
type Verify struct {
	authn *auth.Authenticator
}

func NewVerify(authn *auth.Authenticator) *Verify {
	return &Verify{authn: authn}
}

func (uc *Verify) Execute(ctx context.Context, header string) (*dto.AuthResponse, error) {
	p, err := uc.authn.Authenticate(ctx, header)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: p.User}, nil
}

// SignOut revokes the session behind a bearer header.
type SignOut struct {
	authn *auth.Authenticator
}

func NewSignOut(authn *auth.Authenticator) *SignOut {
	return &SignOut{authn: authn}
}

func (uc *SignOut) Execute(ctx context.Context, header string) error {
	p, err := uc.authn.Authenticate(ctx, header)
	if err != nil {
		return err
	}
	if err := uc.authn.Logout(ctx, p); err != nil {
		return httperr.ErrInternal(err)
	}
	return nil
}
