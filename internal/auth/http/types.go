package http

import "github.com/ishanperera/portfolio-backend/internal/auth/service"

// Handler bundles the dependencies for admin auth HTTP endpoints.
type Handler struct {
	credentials *service.CredentialStore
	tokens      *service.TokenService
}

func New(credentials *service.CredentialStore, tokens *service.TokenService) *Handler {
	return &Handler{credentials: credentials, tokens: tokens}
}
