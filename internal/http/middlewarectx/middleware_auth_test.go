package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	"github.com/magabrotheeeer/qrcode-generator/internal/storage/repository"
)

// MockVerifier реализует интерфейс Verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	args := m.Called(ctx, apiKey)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestAPIKeyMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		apiKey         string
		setupMock      func(*MockVerifier)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:   "ключ действителен",
			apiKey: "valid-key",
			setupMock: func(m *MockVerifier) {
				m.On("VerifyAPIKey", mock.Anything, "valid-key").Return(&models.User{
					UID:  "user-1",
					Role: models.RolePremium,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "заголовок отсутствует",
			apiKey:         "",
			setupMock:      func(_ *MockVerifier) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "ключ неизвестен",
			apiKey: "unknown-key",
			setupMock: func(m *MockVerifier) {
				m.On("VerifyAPIKey", mock.Anything, "unknown-key").Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "ошибка сервиса",
			apiKey: "valid-key",
			setupMock: func(m *MockVerifier) {
				m.On("VerifyAPIKey", mock.Anything, "valid-key").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVerifier := new(MockVerifier)
			tt.setupMock(mockVerifier)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "user-1", r.Context().Value(UserUID))
				assert.Equal(t, models.RolePremium, r.Context().Value(Role))
			})

			req := httptest.NewRequest(http.MethodGet, "/qr/history", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}
			w := httptest.NewRecorder()

			APIKeyMiddleware(mockVerifier, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)

			mockVerifier.AssertExpectations(t)
		})
	}
}
