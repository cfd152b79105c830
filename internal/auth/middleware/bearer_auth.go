package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ishanperera/portfolio-backend/internal/auth"
	"github.com/ishanperera/portfolio-backend/internal/auth/domain"
	"github.com/ishanperera/portfolio-backend/internal/auth/service"
)

// RequireAuth validates bearer session tokens and stores the decoded
// claims in the gin context. Every admin-only route goes through this
// gate; no handler does its own token check.
func RequireAuth(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyRequest(c, tokens)
		if err != nil {
			if errors.Is(err, domain.ErrMissingToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			} else {
				// Expired and tampered tokens get the same response.
				c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		c.Set(auth.CtxClaims, claims)

		c.Next()
	}
}

func verifyRequest(c *gin.Context, tokens *service.TokenService) (*domain.Claims, error) {
	token := extractToken(c)
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	return tokens.Verify(token)
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
