package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// InsertAccessLog добавляет запись в журнал доступа.
// Журнал append-only, записи никогда не изменяются.
func (s *Storage) InsertAccessLog(ctx context.Context, entry models.AccessLog) error {
	const op = "storage.InsertAccessLog"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO access_logs (user_uid, endpoint, method, status_code)
			  VALUES ($1, $2, $3, $4);`
	if _, err := s.DB.ExecContext(ctx, query,
		entry.UserUID, entry.Endpoint, entry.Method, entry.StatusCode); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// InsertErrorLog добавляет запись в журнал ошибок. Ссылка на пользователя
// опциональна и обнуляется базой при его удалении.
func (s *Storage) InsertErrorLog(ctx context.Context, entry models.ErrorLog) error {
	const op = "storage.InsertErrorLog"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var userUID sql.NullString
	if entry.UserUID != nil {
		userUID = sql.NullString{String: *entry.UserUID, Valid: true}
	}
	query := `INSERT INTO error_logs (user_uid, endpoint, message)
			  VALUES ($1, $2, $3);`
	if _, err := s.DB.ExecContext(ctx, query,
		userUID, entry.Endpoint, entry.Message); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListErrorLogs возвращает записи журнала ошибок, новые первыми.
func (s *Storage) ListErrorLogs(ctx context.Context, limit, offset int) ([]*models.ErrorLog, error) {
	const op = "storage.ListErrorLogs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, endpoint, message, created_at
			  FROM error_logs
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	var result []*models.ErrorLog
	for rows.Next() {
		e := &models.ErrorLog{}
		var userUID sql.NullString
		if err := rows.Scan(&e.ID, &userUID, &e.Endpoint, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if userUID.Valid {
			e.UserUID = &userUID.String
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
