package httpserver

import (
	"strings"

	"ecommerce/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	principalKey   = "principal"
	currentUserKey = "currentUser"
)

// requestID tags every request with an id for log correlation, honoring one
// supplied by the client.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// authRequired resolves the bearer token to a principal and stores it on the
// context. The core trusts this principal; no re-validation downstream.
func authRequired(users UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		u, err := users.LookupByToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(c, domain.ErrUnauthorized)
			return
		}
		c.Set(principalKey, domain.Principal{UserID: u.ID, Role: u.Role})
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// adminOnly must run after authRequired.
func adminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentPrincipal(c).IsAdmin() {
			respondError(c, &domain.ForbiddenError{Reason: "admin role required"})
			return
		}
		c.Next()
	}
}

func currentPrincipal(c *gin.Context) domain.Principal {
	p, _ := c.Get(principalKey)
	principal, _ := p.(domain.Principal)
	return principal
}

func currentUser(c *gin.Context) *domain.User {
	v, _ := c.Get(currentUserKey)
	u, _ := v.(*domain.User)
	return u
}
