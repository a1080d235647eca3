// Package services содержит бизнес-логику журналов аудита:
// запись обращений к API и выдачу журнала ошибок администраторам.
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// AuditRepository определяет методы для работы с журналами в хранилище.
type AuditRepository interface {
	// InsertAccessLog добавляет запись в журнал доступа.
	InsertAccessLog(ctx context.Context, entry models.AccessLog) error
	// ListErrorLogs возвращает записи журнала ошибок с пагинацией.
	ListErrorLogs(ctx context.Context, limit, offset int) ([]*models.ErrorLog, error)
}

// AuditService реализует бизнес-логику журналов аудита.
type AuditService struct {
	repo AuditRepository
	log  *slog.Logger
}

// NewAuditService создает новый экземпляр AuditService.
func NewAuditService(repo AuditRepository, log *slog.Logger) *AuditService {
	return &AuditService{
		repo: repo,
		log:  log,
	}
}

// LogAccess добавляет запись в журнал доступа. Журнал append-only,
// дальнейших изменений записи не бывает.
func (s *AuditService) LogAccess(ctx context.Context, entry models.AccessLog) error {
	return s.repo.InsertAccessLog(ctx, entry)
}

// ListErrors возвращает записи журнала ошибок, новые первыми.
func (s *AuditService) ListErrors(ctx context.Context, limit, offset int) ([]*models.ErrorLog, error) {
	return s.repo.ListErrorLogs(ctx, limit, offset)
}
