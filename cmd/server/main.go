package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-fare-compare/internal/browser"
	"go-fare-compare/internal/config"
	"go-fare-compare/internal/fares"
	"go-fare-compare/internal/logger"
	"go-fare-compare/internal/server"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("❌ Failed to init logger: %v", err)
	}
	defer func() {
		_ = zlog.Sync()
	}()

	gin.SetMode(gin.ReleaseMode)
	launcher := browser.NewLauncher(cfg, zlog)
	svc := fares.NewService(zlog, launcher, fares.DefaultProviders(cfg, zlog))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: server.New(zlog, svc),
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("🚀 Fare comparison server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		zlog.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Error("❌ Server stopped", zap.Error(err))
		}
		return
	}

	//a fetch cycle can take several page loads, give it time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Warn("⚠️ Graceful shutdown failed", zap.Error(err))
	}
	zlog.Info("🏁 Server stopped")
}
