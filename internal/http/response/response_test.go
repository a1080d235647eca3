package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"uid": "user-1"})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email  string `validate:"required,email"`
		Size   int    `validate:"required,gt=0,lte=2048"`
		Color  string `validate:"required,hexcolor"`
		Format string `validate:"required,oneof=PNG SVG"`
	}

	tests := []struct {
		name    string
		input   payload
		wantMsg string
	}{
		{
			name:    "отсутствует обязательное поле",
			input:   payload{Size: 256, Color: "#000000", Format: "PNG"},
			wantMsg: "field Email is a required field",
		},
		{
			name:    "некорректный email",
			input:   payload{Email: "not-an-email", Size: 256, Color: "#000000", Format: "PNG"},
			wantMsg: "field Email must be a valid email address",
		},
		{
			name:    "размер больше максимума",
			input:   payload{Email: "a@b.com", Size: 4096, Color: "#000000", Format: "PNG"},
			wantMsg: "field Size must be at most 2048",
		},
		{
			name:    "некорректный цвет",
			input:   payload{Email: "a@b.com", Size: 256, Color: "red", Format: "PNG"},
			wantMsg: "field Color must be a hex color like #1a2b3c",
		},
		{
			name:    "значение вне множества",
			input:   payload{Email: "a@b.com", Size: 256, Color: "#000000", Format: "JPEG"},
			wantMsg: "field Format must be one of: PNG SVG",
		},
	}

	validate := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			assert.Contains(t, resp.Error, tt.wantMsg)
		})
	}
}
