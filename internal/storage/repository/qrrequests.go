package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// CreateRequest вставляет запись о запросе генерации QR-кода.
// Записи неизменяемы, UPDATE-путь отсутствует: повторные запросы
// с теми же параметрами создают независимые записи.
func (s *Storage) CreateRequest(ctx context.Context, req models.QRRequest) error {
	const op = "storage.CreateRequest"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO qr_requests (id, user_uid, content_type, content, size,
			      color, correction_level, format)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`
	if _, err := s.DB.ExecContext(ctx, query,
		req.ID, req.UserUID, req.ContentType, req.Content, req.Size,
		req.Color, req.CorrectionLevel, req.Format); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListRequests возвращает запросы пользователя с пагинацией,
// новые записи первыми.
func (s *Storage) ListRequests(ctx context.Context, userUID string, limit, offset int) ([]*models.QRRequest, error) {
	const op = "storage.ListRequests"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, content_type, content, size, color,
			      correction_level, format, created_at
			  FROM qr_requests
			  WHERE user_uid = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, userUID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.QRRequest
	for rows.Next() {
		r := &models.QRRequest{}
		if err := rows.Scan(&r.ID, &r.UserUID, &r.ContentType, &r.Content,
			&r.Size, &r.Color, &r.CorrectionLevel, &r.Format, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
