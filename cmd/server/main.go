package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GeyBee/skincare-saas/internal"
	"github.com/GeyBee/skincare-saas/internal/api"
	"github.com/GeyBee/skincare-saas/internal/auth"
	"github.com/GeyBee/skincare-saas/internal/config"
	"github.com/GeyBee/skincare-saas/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logger.Fatalf("failed to create upload dir: %v", err)
	}

	repos, err := storage.New(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	provider := auth.NewJWTProvider(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour, logger)
	app := api.NewApp(logger, repos, provider, cfg.UploadDir)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(app),
	}

	go func() {
		logger.Infof("server running on %s (storage=%s)", cfg.HTTPAddr, cfg.DBType)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if err := repos.Close(); err != nil {
		logger.Errorf("storage close: %v", err)
	}
}
