package health

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
)

// MockChecker реализует интерфейс health.Checker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) CheckDatabaseReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		setupMock      func(*MockChecker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "сервис готов",
			setupMock: func(m *MockChecker) {
				m.On("CheckDatabaseReady", mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name: "база недоступна",
			setupMock: func(m *MockChecker) {
				m.On("CheckDatabaseReady", mock.Anything).Return(errors.New("connection refused"))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `"error":"database is not ready"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChecker := new(MockChecker)
			tt.setupMock(mockChecker)

			handler := New(logger, mockChecker)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockChecker.AssertExpectations(t)
		})
	}
}
