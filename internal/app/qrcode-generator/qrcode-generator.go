// Package qrcodegenerator собирает и запускает основное приложение.
package qrcodegenerator

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/qrcode-generator/internal/cache"
	"github.com/magabrotheeeer/qrcode-generator/internal/config"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/qr"
	"github.com/magabrotheeeer/qrcode-generator/internal/metrics"
	"github.com/magabrotheeeer/qrcode-generator/internal/migrations"
	auditservice "github.com/magabrotheeeer/qrcode-generator/internal/services/audit"
	qrservice "github.com/magabrotheeeer/qrcode-generator/internal/services/qrcode"
	subservice "github.com/magabrotheeeer/qrcode-generator/internal/services/subscription"
	userservice "github.com/magabrotheeeer/qrcode-generator/internal/services/user"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	userService := userservice.NewUserService(db, cacheRedis, logger)
	qrService := qrservice.NewQRService(db, qr.New(), logger)
	subscriptionService := subservice.NewSubscriptionService(db, logger)
	auditService := auditservice.NewAuditService(db, logger)
	httpMetrics := metrics.NewHTTPMetrics()

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db, userService, qrService, subscriptionService, auditService, httpMetrics)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
