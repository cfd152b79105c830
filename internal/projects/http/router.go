package http

import "github.com/gin-gonic/gin"

// RegisterAdmin attaches the authenticated CRUD surface to the admin
// router group. Every route passes through the auth gate.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/projects", requireAuth, h.listAll)
	rg.POST("/projects", requireAuth, h.create)
	rg.PUT("/projects/:id", requireAuth, h.update)
	rg.DELETE("/projects/:id", requireAuth, h.delete)
	rg.PATCH("/projects/:id/featured", requireAuth, h.toggleFeatured)
	rg.GET("/stats", requireAuth, h.stats)
}

// RegisterPublic attaches the unauthenticated read-only surface.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/meta/categories", h.categories)
	rg.GET("/meta/stats", h.publicStats)
	rg.GET("/:id", h.get)
}
