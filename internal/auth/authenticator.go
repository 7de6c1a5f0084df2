package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/bizmarket/internal/domain/user"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
	"github.com/BruksfildServices01/bizmarket/internal/models"
)

// Principal is the authenticated caller. Role decisions use User.UserType,
// which is read from the store on every request.
type Principal struct {
	User   *models.User
	Claims *Claims
}

func (p *Principal) IsAdmin() bool {
	return p != nil && user.Role(p.User.UserType) == user.RoleAdmin
}

func (p *Principal) UserID() string {
	if p == nil {
		return ""
	}
	return p.User.ID
}

type Authenticator struct {
	issuer   *Issuer
	sessions *SessionStore
	users    user.Repository
}

func NewAuthenticator(issuer *Issuer, sessions *SessionStore, users user.Repository) *Authenticator {
	return &Authenticator{issuer: issuer, sessions: sessions, users: users}
}

var (
	errMissingToken = httperr.ErrUnauthorized("missing_token", "Authorization required")
	errInvalidToken = httperr.ErrUnauthorized("invalid_token", "Invalid or expired token")
)

// Authenticate resolves an Authorization header value into a Principal.
func (a *Authenticator) Authenticate(ctx context.Context, header string) (*Principal, error) {
	if strings.TrimSpace(header) == "" {
		return nil, errMissingToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errInvalidToken
	}

	claims, err := a.issuer.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errInvalidToken
	}

	if err := a.sessions.Check(ctx, claims.ID, claims.Subject); err != nil {
		if errors.Is(err, ErrSessionRevoked) {
			return nil, errInvalidToken
		}
		return nil, httperr.ErrInternal(err)
	}

	u, err := a.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, errInvalidToken
		}
		return nil, err
	}

	return &Principal{User: u, Claims: claims}, nil
}

// Login issues a token for u and opens its session.
func (a *Authenticator) Login(ctx context.Context, u *models.User) (string, error) {
	token, claims, err := a.issuer.Issue(u.ID, u.UserType)
	if err != nil {
		return "", err
	}
	if err := a.sessions.Save(ctx, claims.ID, u.ID, a.issuer.TTL()); err != nil {
		return "", err
	}
	return token, nil
}

func (a *Authenticator) Logout(ctx context.Context, p *Principal) error {
	return a.sessions.Revoke(ctx, p.Claims.ID)
}
