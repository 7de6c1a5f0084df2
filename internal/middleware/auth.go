package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bizmarket/internal/auth"
	"github.com/BruksfildServices01/bizmarket/internal/httperr"
)

const (
	ContextPrincipal = "principal"
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
)

func setPrincipal(c *gin.Context, p *auth.Principal) {
	c.Set(ContextPrincipal, p)
	c.Set(ContextUserID, p.User.ID)
	c.Set(ContextUserRole, p.User.UserType)
}

// Principal returns the authenticated caller, or nil for anonymous requests.
func Principal(c *gin.Context) *auth.Principal {
	if v, ok := c.Get(ContextPrincipal); ok {
		if p, ok := v.(*auth.Principal); ok {
			return p
		}
	}
	return nil
}

// RequireUser rejects requests without a valid session.
func RequireUser(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := a.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		setPrincipal(c, p)
		c.Next()
	}
}

// RequireAdmin is RequireUser plus the admin role.
func RequireAdmin(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := a.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		if !p.IsAdmin() {
			httperr.Respond(c, httperr.ErrForbidden("admin_required", "Admin access required"))
			return
		}
		setPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a token is sent. A token that is
// present but invalid is still rejected.
func OptionalAuth(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		p, err := a.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		setPrincipal(c, p)
		c.Next()
	}
}
