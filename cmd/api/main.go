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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/bizmarket/internal/audit"
	"github.com/BruksfildServices01/bizmarket/internal/cache"
	"github.com/BruksfildServices01/bizmarket/internal/config"
	dbpkg "github.com/BruksfildServices01/bizmarket/internal/db"
	"github.com/BruksfildServices01/bizmarket/internal/infra/mercadopago"
	"github.com/BruksfildServices01/bizmarket/internal/logger"
	"github.com/BruksfildServices01/bizmarket/internal/routes"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat, "bizmarket-api")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return err
	}
	if err := dbpkg.SeedAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword, lg); err != nil {
		return err
	}

	rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	gateway, err := mercadopago.NewGateway(cfg.MPAccessToken, cfg.PaymentNotificationURL, cfg.PaymentBackURL)
	if err != nil {
		return err
	}
	if cfg.PaymentWebhookSecret == "" {
		lg.Warn("PAYMENT_WEBHOOK_SECRET not set, every webhook will be rejected")
	}

	dispatcher := audit.NewDispatcher(audit.New(db), lg.Named("audit"))
	defer dispatcher.Close()

	if cfg.LogFormat != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Redis:   rdb,
		Config:  cfg,
		Log:     lg,
		Gateway: gateway,
		Audit:   dispatcher,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
