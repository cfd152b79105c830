package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ishanperera/portfolio-backend/internal/auth"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a signed session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	admin, err := h.credentials.Authenticate(req.Email, req.Password)
	if err != nil {
		// Same message whether the email or the password was wrong.
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := h.tokens.Issue(*admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  admin.UserInfo(),
	})
}

// Verify confirms the bearer token is still valid and echoes its claims.
func (h *Handler) Verify(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  claims.UserInfo(),
	})
}

// Profile returns the authenticated admin's identity summary.
func (h *Handler) Profile(c *gin.Context) {
	claims := auth.ClaimsFrom(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": claims.UserInfo()})
}
