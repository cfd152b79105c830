package http

import "github.com/gin-gonic/gin"

// Register attaches auth routes to the admin router group. Login is the
// only unauthenticated route; everything else sits behind the gate.
func (h *Handler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.GET("/verify", requireAuth, h.Verify)
	rg.GET("/profile", requireAuth, h.Profile)
}
