// Package generate реализует HTTP-обработчик генерации QR-кода.
//
// Handler принимает JSON-запрос с параметрами кода, валидирует их, извлекает
// пользователя из контекста, вызывает бизнес-логику генерации и возвращает
// байты изображения в запрошенном формате. Идентификатор созданной записи
// передаётся в заголовке X-QR-Request-ID.
//
// В случае ошибок формируются соответствующие JSON-ответы с описанием проблемы.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qrcode-generator/internal/http/response"
	"github.com/magabrotheeeer/qrcode-generator/internal/lib/sl"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	qrservice "github.com/magabrotheeeer/qrcode-generator/internal/services/qrcode"
)

// RequestIDHeader имя заголовка с идентификатором созданной записи.
const RequestIDHeader = "X-QR-Request-ID"

// Handler управляет HTTP-запросами на генерацию QR-кодов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики генерации
	counter  Counter             // Счетчик сгенерированных кодов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики генерации QR-кода.
type Service interface {
	Generate(ctx context.Context, userUID string, req models.DummyRequest) (*qrservice.GenerateResult, error)
}

// Counter описывает интерфейс счетчика сгенерированных QR-кодов.
type Counter interface {
	IncQRGenerated(format string)
}

// New создает новый Handler с переданными логгером, сервисом и счетчиком.
func New(log *slog.Logger, service Service, counter Counter) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		counter:  counter,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сгенерировать QR-код
// @Description Генерирует QR-код по параметрам запроса, сохраняет запись о запросе и возвращает байты изображения. Идентификатор записи — в заголовке X-QR-Request-ID.
// @Tags QR
// @Accept  json
// @Produce  png
// @Param request body models.DummyRequest true "Параметры QR-кода"
// @Success 200 {file} binary "Изображение в запрошенном формате"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка генерации или сохранения"
// @Security ApiKeyAuth
// @Router /qr [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.qrcode.generate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	res, err := h.service.Generate(r.Context(), userUID, req)
	if err != nil {
		if errors.Is(err, qrservice.ErrEncodeFailed) {
			log.Error("failed to encode qr code", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not generate qr code"))
			return
		}
		log.Error("failed to store qr request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not store qr request"))
		return
	}

	log.Info("success to generate qr code", slog.String("id", res.ID))
	h.counter.IncQRGenerated(req.Format)
	w.Header().Set("Content-Type", res.MIME)
	w.Header().Set(RequestIDHeader, res.ID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Image); err != nil {
		log.Error("failed to write image", sl.Err(err))
	}
}
