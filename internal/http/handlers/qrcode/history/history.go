// Package history реализует HTTP-обработчик выдачи истории запросов
// генерации текущего пользователя с пагинацией.
package history

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/response"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики истории запросов.
type Service interface {
	History(ctx context.Context, userUID string, limit, offset int) ([]*models.QRRequest, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary История генераций
// @Description Возвращает запросы генерации текущего пользователя, новые первыми.
// @Tags QR
// @Produce  json
// @Param limit query int false "Число записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Список запросов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security ApiKeyAuth
// @Router /qr/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.qrcode.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.History(r.Context(), userUID, limit, offset)
	if err != nil {
		log.Error("failed to list qr requests", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list qr requests"))
		return
	}

	log.Info("list qr requests", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"requests":   res,
	}))
}
