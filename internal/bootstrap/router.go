package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ishanperera/portfolio-backend/config"
	httpapi "github.com/ishanperera/portfolio-backend/internal/api/http"
	apimw "github.com/ishanperera/portfolio-backend/internal/api/http/middleware"
	authdomain "github.com/ishanperera/portfolio-backend/internal/auth/domain"
	authhttp "github.com/ishanperera/portfolio-backend/internal/auth/http"
	authmw "github.com/ishanperera/portfolio-backend/internal/auth/middleware"
	authservice "github.com/ishanperera/portfolio-backend/internal/auth/service"
	"github.com/ishanperera/portfolio-backend/internal/contact"
	contacthttp "github.com/ishanperera/portfolio-backend/internal/contact/http"
	projecthttp "github.com/ishanperera/portfolio-backend/internal/projects/http"
	projectservice "github.com/ishanperera/portfolio-backend/internal/projects/service"
	"github.com/ishanperera/portfolio-backend/internal/projects/store"
)

type RouterDeps struct {
	ServiceName string
	Cfg         *config.Config
	Store       store.Store
	Mailer      contact.Mailer
	Log         *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Cfg.App.Version, dep.Cfg.Store.Driver)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	admin := authdomain.AdminIdentity{
		ID:           dep.Cfg.Auth.AdminID,
		Email:        dep.Cfg.Auth.AdminEmail,
		PasswordHash: dep.Cfg.Auth.AdminPasswordHash,
		Name:         dep.Cfg.Auth.AdminName,
	}
	credentials := authservice.NewCredentialStore(admin)
	tokens := authservice.NewTokenService(dep.Cfg.Auth.JWTSecret, dep.Cfg.Auth.TokenTTL)
	requireAuth := authmw.RequireAuth(tokens)

	projectSvc := projectservice.New(dep.Store)
	projectHandler := projecthttp.New(projectSvc)

	adminGroup := api.Group("/admin")
	authhttp.New(credentials, tokens).Register(adminGroup, requireAuth)
	projectHandler.RegisterAdmin(adminGroup, requireAuth)

	projectHandler.RegisterPublic(api.Group("/projects"))

	contactSvc := contact.NewService(dep.Mailer, dep.Cfg.Mail.SenderEmail, dep.Cfg.Mail.RecipientEmail, dep.Log)
	contactLimiter := apimw.RateLimit(apimw.RateLimitConfig{
		Burst:           5,
		RefillPerWindow: 5,
		Window:          time.Hour,
	})
	contacthttp.New(contactSvc).Register(api.Group("/contact"), contactLimiter)

	return r
}
