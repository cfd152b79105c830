package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/ishanperera/portfolio-backend/internal/auth/domain"
)

const (
	// CtxClaims is the gin context key under which the auth middleware
	// stores the verified token claims.
	CtxClaims = "admin_claims"
)

// ClaimsFrom extracts the verified claims set by the auth middleware.
// Returns nil if the request did not pass through the middleware.
func ClaimsFrom(c *gin.Context) *domain.Claims {
	v, ok := c.Get(CtxClaims)
	if !ok {
		return nil
	}
	claims, ok := v.(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
