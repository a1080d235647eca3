package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// MockQRRepository реализует интерфейс QRRepository
type MockQRRepository struct {
	mock.Mock
}

func (m *MockQRRepository) CreateRequest(ctx context.Context, req models.QRRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockQRRepository) ListRequests(ctx context.Context, userUID string, limit, offset int) ([]*models.QRRequest, error) {
	args := m.Called(ctx, userUID, limit, offset)
	if res, ok := args.Get(0).([]*models.QRRequest); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockQRRepository) InsertErrorLog(ctx context.Context, entry models.ErrorLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockEncoder реализует интерфейс Encoder
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(req models.DummyRequest) ([]byte, string, error) {
	args := m.Called(req)
	if image, ok := args.Get(0).([]byte); ok {
		return image, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func validRequest() models.DummyRequest {
	return models.DummyRequest{
		ContentType:     models.ContentTypeURL,
		Content:         "https://example.com",
		Size:            256,
		Color:           "#000000",
		CorrectionLevel: models.CorrectionLevelM,
		Format:          models.FormatPNG,
	}
}

func TestGenerate(t *testing.T) {
	t.Run("успешная генерация вставляет одну запись", func(t *testing.T) {
		repo := new(MockQRRepository)
		encoder := new(MockEncoder)
		req := validRequest()

		encoder.On("Encode", req).Return([]byte("png-bytes"), "image/png", nil)
		repo.On("CreateRequest", mock.Anything, mock.MatchedBy(func(entry models.QRRequest) bool {
			if _, err := uuid.Parse(entry.ID); err != nil {
				return false
			}
			return entry.UserUID == "user-1" &&
				entry.Content == req.Content &&
				entry.Format == models.FormatPNG
		})).Return(nil)

		svc := NewQRService(repo, encoder, newTestLogger())

		res, err := svc.Generate(context.Background(), "user-1", req)
		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), res.Image)
		assert.Equal(t, "image/png", res.MIME)
		assert.NotEmpty(t, res.ID)

		repo.AssertExpectations(t)
		repo.AssertNotCalled(t, "InsertErrorLog", mock.Anything, mock.Anything)
	})

	t.Run("повторные запросы создают независимые записи", func(t *testing.T) {
		repo := new(MockQRRepository)
		encoder := new(MockEncoder)
		req := validRequest()

		encoder.On("Encode", req).Return([]byte("png-bytes"), "image/png", nil)
		repo.On("CreateRequest", mock.Anything, mock.Anything).Return(nil)

		svc := NewQRService(repo, encoder, newTestLogger())

		first, err := svc.Generate(context.Background(), "user-1", req)
		assert.NoError(t, err)
		second, err := svc.Generate(context.Background(), "user-1", req)
		assert.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		repo.AssertNumberOfCalls(t, "CreateRequest", 2)
	})

	t.Run("ошибка кодировщика пишется в журнал", func(t *testing.T) {
		repo := new(MockQRRepository)
		encoder := new(MockEncoder)
		req := validRequest()

		encoder.On("Encode", req).Return(nil, "", errors.New("content too long"))
		repo.On("InsertErrorLog", mock.Anything, mock.MatchedBy(func(entry models.ErrorLog) bool {
			return entry.Endpoint == "qr.generate" &&
				entry.UserUID != nil && *entry.UserUID == "user-1"
		})).Return(nil)

		svc := NewQRService(repo, encoder, newTestLogger())

		_, err := svc.Generate(context.Background(), "user-1", req)
		assert.ErrorIs(t, err, ErrEncodeFailed)

		repo.AssertNotCalled(t, "CreateRequest", mock.Anything, mock.Anything)
		repo.AssertExpectations(t)
	})

	t.Run("ошибка хранилища пишется в журнал", func(t *testing.T) {
		repo := new(MockQRRepository)
		encoder := new(MockEncoder)
		req := validRequest()

		encoder.On("Encode", req).Return([]byte("png-bytes"), "image/png", nil)
		repo.On("CreateRequest", mock.Anything, mock.Anything).Return(errors.New("db error"))
		repo.On("InsertErrorLog", mock.Anything, mock.Anything).Return(nil)

		svc := NewQRService(repo, encoder, newTestLogger())

		_, err := svc.Generate(context.Background(), "user-1", req)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEncodeFailed)

		repo.AssertExpectations(t)
	})

	t.Run("отказ журнала не маскирует исходную ошибку", func(t *testing.T) {
		repo := new(MockQRRepository)
		encoder := new(MockEncoder)
		req := validRequest()

		encoder.On("Encode", req).Return(nil, "", errors.New("content too long"))
		repo.On("InsertErrorLog", mock.Anything, mock.Anything).Return(errors.New("log db error"))

		svc := NewQRService(repo, encoder, newTestLogger())

		_, err := svc.Generate(context.Background(), "user-1", req)
		assert.ErrorIs(t, err, ErrEncodeFailed)
	})
}

func TestHistory(t *testing.T) {
	repo := new(MockQRRepository)
	encoder := new(MockEncoder)
	repo.On("ListRequests", mock.Anything, "user-1", 10, 0).Return([]*models.QRRequest{
		{ID: "req-1", UserUID: "user-1"},
	}, nil)

	svc := NewQRService(repo, encoder, newTestLogger())

	res, err := svc.History(context.Background(), "user-1", 10, 0)
	assert.NoError(t, err)
	assert.Len(t, res, 1)

	repo.AssertExpectations(t)
}
