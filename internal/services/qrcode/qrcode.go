// Package services содержит бизнес-логику генерации QR-кодов:
// кодирование изображения, запись аудита и историю запросов пользователя.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// endpointGenerate имя конечной точки для записей журнала ошибок.
const endpointGenerate = "qr.generate"

// ErrEncodeFailed возвращается, когда кодировщик не смог построить изображение.
var ErrEncodeFailed = errors.New("encode failed")

// QRRepository определяет методы для работы с запросами генерации в хранилище.
type QRRepository interface {
	// CreateRequest вставляет неизменяемую запись о запросе генерации.
	CreateRequest(ctx context.Context, req models.QRRequest) error
	// ListRequests возвращает запросы пользователя с пагинацией.
	ListRequests(ctx context.Context, userUID string, limit, offset int) ([]*models.QRRequest, error)
	// InsertErrorLog добавляет запись в журнал ошибок.
	InsertErrorLog(ctx context.Context, entry models.ErrorLog) error
}

// Encoder строит изображение QR-кода по параметрам запроса.
type Encoder interface {
	Encode(req models.DummyRequest) ([]byte, string, error)
}

// GenerateResult содержит результат успешной генерации.
type GenerateResult struct {
	ID    string // Идентификатор созданной записи qr_requests
	Image []byte // Байты изображения
	MIME  string // MIME-тип изображения
}

// QRService реализует бизнес-логику генерации QR-кодов.
type QRService struct {
	repo    QRRepository
	encoder Encoder
	log     *slog.Logger
}

// NewQRService создает новый экземпляр QRService.
func NewQRService(repo QRRepository, encoder Encoder, log *slog.Logger) *QRService {
	return &QRService{
		repo:    repo,
		encoder: encoder,
		log:     log,
	}
}

// Generate кодирует изображение и вставляет ровно одну запись qr_requests.
// Запрос атомарен: либо запись и изображение, либо ничего. Ошибки кодировщика
// и хранилища дополнительно фиксируются в журнале ошибок с именем конечной
// точки и пользователем. Повторные запросы с теми же параметрами создают
// независимые записи, дедупликации нет.
func (s *QRService) Generate(ctx context.Context, userUID string, req models.DummyRequest) (*GenerateResult, error) {
	image, mime, err := s.encoder.Encode(req)
	if err != nil {
		s.logError(ctx, userUID, fmt.Sprintf("encoder: %s", err))
		return nil, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}

	entry := models.QRRequest{
		ID:              uuid.NewString(),
		UserUID:         userUID,
		ContentType:     req.ContentType,
		Content:         req.Content,
		Size:            req.Size,
		Color:           req.Color,
		CorrectionLevel: req.CorrectionLevel,
		Format:          req.Format,
	}
	if err := s.repo.CreateRequest(ctx, entry); err != nil {
		s.logError(ctx, userUID, fmt.Sprintf("storage: %s", err))
		return nil, err
	}

	s.log.Info("generated qr code",
		slog.String("id", entry.ID),
		slog.String("format", req.Format),
		slog.Int("size", req.Size))

	return &GenerateResult{
		ID:    entry.ID,
		Image: image,
		MIME:  mime,
	}, nil
}

// History возвращает запросы пользователя с пагинацией, новые первыми.
func (s *QRService) History(ctx context.Context, userUID string, limit, offset int) ([]*models.QRRequest, error) {
	return s.repo.ListRequests(ctx, userUID, limit, offset)
}

// logError пишет запись в журнал ошибок. Отказ журнала не должен
// маскировать исходную ошибку, поэтому он только логируется.
func (s *QRService) logError(ctx context.Context, userUID, msg string) {
	entry := models.ErrorLog{
		UserUID:  &userUID,
		Endpoint: endpointGenerate,
		Message:  msg,
	}
	if err := s.repo.InsertErrorLog(ctx, entry); err != nil {
		s.log.Warn("failed to insert error log", slog.Any("err", err))
	}
}
