package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// AccessLogger описывает интерфейс сервиса для записи журнала доступа.
type AccessLogger interface {
	LogAccess(ctx context.Context, entry models.AccessLog) error
}

// AccessLogMiddleware пишет запись журнала доступа для каждого
// аутентифицированного запроса после его завершения. Журнал append-only;
// отказ записи не влияет на уже отданный ответ, только логируется.
func AccessLogMiddleware(audit AccessLogger, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "audit.AccessLogMiddleware"

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				return
			}

			entry := models.AccessLog{
				UserUID:    userUID,
				Endpoint:   r.URL.Path,
				Method:     r.Method,
				StatusCode: ww.Status(),
			}
			if err := audit.LogAccess(r.Context(), entry); err != nil {
				log.Error("failed to write access log",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err))
			}
		})
	}
}
