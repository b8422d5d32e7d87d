package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/tours360/tourgraph/internal/auth"
	"github.com/tours360/tourgraph/internal/bootstrap"
	"github.com/tours360/tourgraph/internal/config"
	"github.com/tours360/tourgraph/internal/modules/handler"
	"github.com/tours360/tourgraph/internal/router"
	"github.com/tours360/tourgraph/internal/telemetry"
)

//go:generate swag init -g main.go -o docs

// @title						tourgraph API
// @version					1.0
// @description				Virtual tour editor: properties, 360 scenes, hotspots, gallery and leads.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Supabase access token, as "Bearer <token>".
func main() {
	// .env is optional; real deployments set TOURS_* directly
	_ = godotenv.Load()

	inj := bootstrap.BuildContainer()
	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	// tracer and meter providers must exist before the gorm/redis plugins register
	if err := telemetry.Setup(cfg); err != nil {
		log.Warn("telemetry disabled", zap.Error(err))
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		Authorizer:      do.MustInvoke[auth.Authorizer](inj),
		PropertyHandler: do.MustInvoke[*handler.PropertyHandler](inj),
		SceneHandler:    do.MustInvoke[*handler.SceneHandler](inj),
		HotspotHandler:  do.MustInvoke[*handler.HotspotHandler](inj),
		GalleryHandler:  do.MustInvoke[*handler.GalleryHandler](inj),
		LeadHandler:     do.MustInvoke[*handler.LeadHandler](inj),
		StatsHandler:    do.MustInvoke[*handler.StatsHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("api listening", zap.String("addr", addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	if rdb, err := do.Invoke[*redis.Client](inj); err == nil {
		if err := rdb.Close(); err != nil {
			log.Error("redis close", zap.Error(err))
		}
	}
	if err := inj.Shutdown(); err != nil {
		log.Error("container shutdown", zap.Error(err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		log.Error("telemetry shutdown", zap.Error(err))
	}
}
