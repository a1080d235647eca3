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
)

// MockAccessLogger реализует интерфейс AccessLogger
type MockAccessLogger struct {
	mock.Mock
}

func (m *MockAccessLogger) LogAccess(ctx context.Context, entry models.AccessLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func TestAccessLogMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Run("запись после аутентифицированного запроса", func(t *testing.T) {
		mockAudit := new(MockAccessLogger)
		mockAudit.On("LogAccess", mock.Anything, models.AccessLog{
			UserUID:    "user-1",
			Endpoint:   "/qr",
			Method:     http.MethodPost,
			StatusCode: http.StatusOK,
		}).Return(nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/qr", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserUID, "user-1"))
		w := httptest.NewRecorder()

		AccessLogMiddleware(mockAudit, logger)(next).ServeHTTP(w, req)

		mockAudit.AssertExpectations(t)
	})

	t.Run("код ответа попадает в запись", func(t *testing.T) {
		mockAudit := new(MockAccessLogger)
		mockAudit.On("LogAccess", mock.Anything, mock.MatchedBy(func(entry models.AccessLog) bool {
			return entry.StatusCode == http.StatusUnprocessableEntity
		})).Return(nil)

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})

		req := httptest.NewRequest(http.MethodPost, "/qr", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserUID, "user-1"))
		w := httptest.NewRecorder()

		AccessLogMiddleware(mockAudit, logger)(next).ServeHTTP(w, req)

		mockAudit.AssertExpectations(t)
	})

	t.Run("без пользователя запись не пишется", func(t *testing.T) {
		mockAudit := new(MockAccessLogger)

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		AccessLogMiddleware(mockAudit, logger)(next).ServeHTTP(w, req)

		mockAudit.AssertNotCalled(t, "LogAccess", mock.Anything, mock.Anything)
	})

	t.Run("отказ записи не меняет ответ", func(t *testing.T) {
		mockAudit := new(MockAccessLogger)
		mockAudit.On("LogAccess", mock.Anything, mock.Anything).Return(errors.New("db error"))

		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/qr", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserUID, "user-1"))
		w := httptest.NewRecorder()

		AccessLogMiddleware(mockAudit, logger)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockAudit.AssertExpectations(t)
	})
}
