// Package services содержит бизнес-логику работы с пользователями:
// регистрацию, проверку API-ключей с кешированием и удаление.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

// apiKeyTTL время жизни кешированного результата проверки API-ключа.
const apiKeyTTL = 5 * time.Minute

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByAPIKey возвращает пользователя по API-ключу.
	GetUserByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// DeleteUser удаляет пользователя и возвращает количество удалённых записей.
	DeleteUser(ctx context.Context, userUID string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// UserService реализует бизнес-логику работы с пользователями.
type UserService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, log *slog.Logger) *UserService {
	return &UserService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Register создает нового пользователя со сгенерированным API-ключом.
// Роль по умолчанию — basic. Возвращает UID и ключ.
func (s *UserService) Register(ctx context.Context, req models.DummyUser) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleBasic
	}

	user := models.User{
		Email:  req.Email,
		APIKey: uuid.NewString(),
		Role:   role,
	}
	uid, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.UID = uid
	s.log.Info("registered new user", slog.String("uid", uid), slog.String("role", role))
	return &user, nil
}

// VerifyAPIKey проверяет API-ключ и возвращает владельца.
// Результат кешируется, неизвестный ключ отдается как repository.ErrNotFound.
func (s *UserService) VerifyAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	cacheKey := fmt.Sprintf("apikey:%s", apiKey)

	var cached models.User
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read api key cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return &cached, nil
	}

	user, err := s.repo.GetUserByAPIKey(ctx, apiKey)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, user, apiKeyTTL); err != nil {
		s.log.Warn("failed to cache api key", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return user, nil
}

// Delete удаляет пользователя по UID и инвалидирует кеш его API-ключа.
// Запросы, подписки и журнал доступа удаляются каскадно на уровне базы,
// записи журнала ошибок сохраняются с пустой ссылкой на пользователя.
func (s *UserService) Delete(ctx context.Context, userUID string) (int, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	cacheKey := fmt.Sprintf("apikey:%s", user.APIKey)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate api key cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	count, err := s.repo.DeleteUser(ctx, userUID)
	if err != nil {
		return 0, err
	}
	s.log.Info("deleted user", slog.String("uid", userUID))
	return count, nil
}
