// Package middlewarectx содержит HTTP middleware для аутентификации по API-ключу.
//
// APIKeyMiddleware проверяет наличие заголовка X-API-Key, ищет владельца ключа
// через сервис пользователей (с кешированием) и в случае успеха добавляет
// в контекст UID и роль пользователя для дальнейшего использования в обработчиках.
//
// В случае неизвестного или отсутствующего ключа возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/response"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

// APIKeyHeader имя заголовка с API-ключом.
const APIKeyHeader = "X-API-Key"

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserUID — ключ для идентификатора пользователя в контексте
	UserUID Key = "user_uid"
	// Role — ключ для роли пользователя в контексте
	Role Key = "role"
)

// Verifier описывает интерфейс сервиса для проверки API-ключа.
type Verifier interface {
	VerifyAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

// APIKeyMiddleware возвращает HTTP middleware, который проверяет API-ключ
// в заголовке X-API-Key.
//
// Если ключ известен, добавляет UID и роль пользователя в контекст запроса,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func APIKeyMiddleware(verifier Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "auth.APIKeyMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				log.Error("missing api key header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing api key"))
				return
			}

			user, err := verifier.VerifyAPIKey(r.Context(), apiKey)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					log.Error("unknown api key")
					render.Status(r, http.StatusUnauthorized)
					render.JSON(w, r, response.Error("unknown api key"))
					return
				}
				log.Error("failed to verify api key", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, user.UID)
			ctx = context.WithValue(ctx, Role, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
