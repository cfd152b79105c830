package http

import "github.com/ishanperera/portfolio-backend/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints, both the
// authenticated admin surface and the public read-only surface.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}
