package http

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ishanperera/portfolio-backend/internal/contact"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Handler bundles the dependencies for the contact-form endpoint.
type Handler struct {
	svc *contact.Service
}

func New(svc *contact.Service) *Handler {
	return &Handler{svc: svc}
}

type submitReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit validates the form and relays it through the mailer.
func (h *Handler) Submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email address"})
		return
	}

	_, err := h.svc.Submit(c.Request.Context(), contact.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to send message. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message sent successfully! I'll get back to you soon.",
	})
}

// Register attaches the contact route with its rate limiter.
func (h *Handler) Register(rg *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	rg.POST("", rateLimit, h.Submit)
}
