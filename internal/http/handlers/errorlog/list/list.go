// Package list реализует HTTP-обработчик выдачи журнала ошибок.
// Доступен только администраторам.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/response"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики журнала ошибок.
type Service interface {
	ListErrors(ctx context.Context, limit, offset int) ([]*models.ErrorLog, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Журнал ошибок
// @Description Возвращает записи журнала ошибок, новые первыми. Только для администраторов.
// @Tags Admin
// @Produce  json
// @Param limit query int false "Число записей (по умолчанию 10)"
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Success 200 {object} response.Response "Журнал ошибок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Security ApiKeyAuth
// @Router /errors [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.errorlog.list"

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

	res, err := h.service.ListErrors(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list error logs", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list error logs"))
		return
	}

	log.Info("list error logs", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"errors":     res,
	}))
}
