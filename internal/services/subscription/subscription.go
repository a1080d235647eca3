// Package services содержит бизнес-логику работы с подписками —
// платёжными периодами пользователя с собственным жизненным циклом.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// SubscriptionRepository определяет методы для работы с подписками в хранилище.
type SubscriptionRepository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// ListSubscriptions возвращает подписки пользователя с пагинацией.
	ListSubscriptions(ctx context.Context, userUID string, limit, offset int) ([]*models.Subscription, error)
	// DeactivateSubscription переводит подписку в статус inactive.
	DeactivateSubscription(ctx context.Context, id int, userUID string) (int, error)
}

// SubscriptionService реализует бизнес-логику работы с подписками.
type SubscriptionService struct {
	repo SubscriptionRepository
	log  *slog.Logger
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo SubscriptionRepository, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		log:  log,
	}
}

// Create создает активную подписку: месячный период заканчивается через
// месяц от сегодняшней даты, годовой — через год.
func (s *SubscriptionService) Create(ctx context.Context, userUID string, req models.DummySubscription) (int, error) {
	startDate := time.Now().Truncate(24 * time.Hour)

	var endDate time.Time
	switch req.PlanType {
	case models.PlanMonthly:
		endDate = startDate.AddDate(0, 1, 0)
	case models.PlanYearly:
		endDate = startDate.AddDate(1, 0, 0)
	default:
		return 0, fmt.Errorf("unknown plan type: %s", req.PlanType)
	}

	sub := models.Subscription{
		UserUID:   userUID,
		PlanType:  req.PlanType,
		Status:    models.SubscriptionActive,
		StartDate: startDate,
		EndDate:   endDate,
	}
	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return 0, err
	}

	s.log.Info("created new subscription", slog.Int("id", id), slog.String("plan", req.PlanType))
	return id, nil
}

// List возвращает подписки пользователя с пагинацией.
func (s *SubscriptionService) List(ctx context.Context, userUID string, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, userUID, limit, offset)
}

// Cancel переводит подписку пользователя в статус inactive и возвращает
// количество изменённых записей. Сама запись не удаляется.
func (s *SubscriptionService) Cancel(ctx context.Context, id int, userUID string) (int, error) {
	count, err := s.repo.DeactivateSubscription(ctx, id, userUID)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.log.Info("deactivated subscription", slog.Int("id", id))
	}
	return count, nil
}
