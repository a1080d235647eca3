// Package qrcodegenerator предоставляет маршруты для основного приложения.
package qrcodegenerator

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/auth/verify"
	errorloglist "github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/errorlog/list"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/health"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/qrcode/generate"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/qrcode/history"
	subcancel "github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/subscription/cancel"
	subcreate "github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/subscription/create"
	sublist "github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/subscription/list"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qrcode-generator/internal/metrics"
	auditservice "github.com/magabrotheeeer/qrcode-generator/internal/services/audit"
	qrservice "github.com/magabrotheeeer/qrcode-generator/internal/services/qrcode"
	subservice "github.com/magabrotheeeer/qrcode-generator/internal/services/subscription"
	userservice "github.com/magabrotheeeer/qrcode-generator/internal/services/user"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage,
	userService *userservice.UserService, qrService *qrservice.QRService,
	subscriptionService *subservice.SubscriptionService, auditService *auditservice.AuditService,
	httpMetrics *metrics.HTTPMetrics) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		httpMetrics.Middleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, userService).ServeHTTP)
		r.Post("/auth/verify", verify.New(logger, userService).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с аутентификацией по API-ключу
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.APIKeyMiddleware(userService, logger))
			r.Use(middlewarectx.AccessLogMiddleware(auditService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/qr", generate.New(logger, qrService, httpMetrics).ServeHTTP)
			r.Get("/qr/history", history.New(logger, qrService).ServeHTTP)
			r.Post("/subscriptions", subcreate.New(logger, subscriptionService).ServeHTTP)
			r.Get("/subscriptions/list", sublist.New(logger, subscriptionService).ServeHTTP)
			r.Delete("/subscriptions/{id}", subcancel.New(logger, subscriptionService).ServeHTTP)

			// Административные конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Delete("/users/{uid}", remove.New(logger, userService).ServeHTTP)
				r.Get("/errors", errorloglist.New(logger, auditService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
