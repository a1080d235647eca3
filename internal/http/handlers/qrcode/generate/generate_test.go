package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qrcode-generator/internal/http/middlewarectx"
	"github.com/magabrotheeeer/qrcode-generator/internal/models"
	qrservice "github.com/magabrotheeeer/qrcode-generator/internal/services/qrcode"
)

// MockService реализует интерфейс generate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Generate(ctx context.Context, userUID string, req models.DummyRequest) (*qrservice.GenerateResult, error) {
	args := m.Called(ctx, userUID, req)
	if res, ok := args.Get(0).(*qrservice.GenerateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCounter реализует интерфейс generate.Counter
type MockCounter struct {
	mock.Mock
}

func (m *MockCounter) IncQRGenerated(format string) {
	m.Called(format)
}

func TestGenerateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{"content_type":"URL","content":"https://example.com","size":256,"color":"#000000","correction_level":"M","format":"PNG"}`

	tests := []struct {
		name           string
		body           string
		withUser       bool
		setupMock      func(*MockService, *MockCounter)
		expectedStatus int
		expectedBody   string
		expectedCT     string
		expectedHeader string
	}{
		{
			name:     "успешная генерация",
			body:     validBody,
			withUser: true,
			setupMock: func(m *MockService, c *MockCounter) {
				m.On("Generate", mock.Anything, "user-1", mock.Anything).Return(&qrservice.GenerateResult{
					ID:    "req-1",
					Image: []byte("png-bytes"),
					MIME:  "image/png",
				}, nil)
				c.On("IncQRGenerated", "PNG").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "png-bytes",
			expectedCT:     "image/png",
			expectedHeader: "req-1",
		},
		{
			name:           "некорректный json",
			body:           `{"content_type":`,
			withUser:       true,
			setupMock:      func(_ *MockService, _ *MockCounter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "ошибка валидации",
			body:           `{"content_type":"URL","content":"https://example.com","size":0,"color":"red","correction_level":"M","format":"PNG"}`,
			withUser:       true,
			setupMock:      func(_ *MockService, _ *MockCounter) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "пользователь не авторизован",
			body:           validBody,
			withUser:       false,
			setupMock:      func(_ *MockService, _ *MockCounter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:     "ошибка кодирования",
			body:     validBody,
			withUser: true,
			setupMock: func(m *MockService, _ *MockCounter) {
				m.On("Generate", mock.Anything, "user-1", mock.Anything).
					Return(nil, fmt.Errorf("%w: bad content", qrservice.ErrEncodeFailed))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not generate qr code"`,
		},
		{
			name:     "ошибка сохранения",
			body:     validBody,
			withUser: true,
			setupMock: func(m *MockService, _ *MockCounter) {
				m.On("Generate", mock.Anything, "user-1", mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not store qr request"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockCounter := new(MockCounter)
			tt.setupMock(mockService, mockCounter)

			handler := New(logger, mockService, mockCounter)

			req := httptest.NewRequest(http.MethodPost, "/qr", strings.NewReader(tt.body))
			if tt.withUser {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, "user-1"))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			if tt.expectedCT != "" {
				assert.Equal(t, tt.expectedCT, w.Header().Get("Content-Type"))
			}
			if tt.expectedHeader != "" {
				assert.Equal(t, tt.expectedHeader, w.Header().Get(RequestIDHeader))
			}

			mockService.AssertExpectations(t)
			mockCounter.AssertExpectations(t)
		})
	}
}
