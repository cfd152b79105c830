package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/ishanperera/portfolio-backend/config"
	"github.com/ishanperera/portfolio-backend/internal/bootstrap"
	"github.com/ishanperera/portfolio-backend/internal/contact"
	"github.com/ishanperera/portfolio-backend/internal/logger"
)

const serviceName = "portfolio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	defer logg.Sync()

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	projectStore, closeStore, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		logg.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	var mailer contact.Mailer
	if cfg.Mail.ResendAPIKey != "" {
		mailer = contact.NewResendMailer(cfg.Mail.ResendAPIKey)
	} else {
		mailer = contact.NewLogMailer(logg)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		Store:       projectStore,
		Mailer:      mailer,
		Log:         logg,
	})

	logg.Info("listening",
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Driver),
		zap.String("env", cfg.App.Environment))

	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		logg.Fatal("server stopped", zap.Error(err))
	}
}
