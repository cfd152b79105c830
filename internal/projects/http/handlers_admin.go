package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ishanperera/portfolio-backend/internal/projects/domain"
)

// listAll returns the full collection in insertion order (admin view).
func (h *Handler) listAll(c *gin.Context) {
	items, err := h.svc.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "All fields are required",
				"missing": ve.Missing,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": p,
	})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var in domain.UpdateProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": p,
	})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
		"project": p,
	})
}

func (h *Handler) toggleFeatured(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
		return
	}

	message := "Project unfeatured successfully"
	if p.Featured {
		message = "Project featured successfully"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"project": p,
	})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
