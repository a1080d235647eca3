// Package verify реализует HTTP-обработчик проверки API-ключа.
//
// Handler принимает JSON-запрос с ключом и сообщает, действителен ли он,
// возвращая UID и роль владельца при успехе. Конечная точка открытая:
// она сама и есть механизм проверки ключа.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/response"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

// DummyVerify используется для приёма данных из JSON-запроса проверки ключа.
type DummyVerify struct {
	APIKey string `json:"api_key" validate:"required"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс сервиса проверки API-ключа.
type Service interface {
	VerifyAPIKey(ctx context.Context, apiKey string) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Проверить API-ключ
// @Description Проверяет переданный API-ключ и возвращает UID и роль владельца, если ключ действителен.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body DummyVerify true "API-ключ"
// @Success 200 {object} models.VerifyResult "Результат проверки"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /auth/verify [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req DummyVerify
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.VerifyAPIKey(r.Context(), req.APIKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("api key is not valid")
			render.JSON(w, r, models.VerifyResult{IsValid: false})
			return
		}
		log.Error("failed to verify api key", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal service error"))
		return
	}

	log.Info("api key verified", slog.String("uid", user.UID))
	render.JSON(w, r, models.VerifyResult{
		IsValid: true,
		UserUID: user.UID,
		Role:    user.Role,
	})
}
