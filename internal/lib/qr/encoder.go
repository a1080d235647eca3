// Package qr отвечает за построение изображения QR-кода. Кодирование матрицы
// выполняет библиотека go-qrcode, растровый вывод — её собственный PNG-рендер,
// векторный — svgo поверх битовой матрицы модулей.
package qr

import (
	"bytes"
	"fmt"
	"image/color"

	svg "github.com/ajstarks/svgo"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/magabrotheeeer/qrcode-generator/internal/models"
)

// Соответствие уровней коррекции стандарта (L/M/Q/H) уровням go-qrcode:
// библиотека называет 25%-уровень High, а 30%-уровень Highest.
var correctionLevels = map[string]qrcode.RecoveryLevel{
	models.CorrectionLevelL: qrcode.Low,
	models.CorrectionLevelM: qrcode.Medium,
	models.CorrectionLevelQ: qrcode.High,
	models.CorrectionLevelH: qrcode.Highest,
}

// Encoder строит изображение QR-кода в запрошенном формате.
type Encoder struct{}

// New создает новый Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Encode кодирует содержимое запроса в изображение и возвращает его байты
// вместе с MIME-типом. Значения перечислений должны быть проверены до вызова.
func (e *Encoder) Encode(req models.DummyRequest) ([]byte, string, error) {
	const op = "qr.Encode"

	level, ok := correctionLevels[req.CorrectionLevel]
	if !ok {
		return nil, "", fmt.Errorf("%s: unknown correction level %q", op, req.CorrectionLevel)
	}

	code, err := qrcode.New(req.Content, level)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	fg, err := parseHexColor(req.Color)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	switch req.Format {
	case models.FormatPNG:
		code.ForegroundColor = fg
		code.BackgroundColor = color.White
		data, err := code.PNG(req.Size)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
		return data, "image/png", nil
	case models.FormatSVG:
		return renderSVG(code, req.Size, req.Color), "image/svg+xml", nil
	default:
		return nil, "", fmt.Errorf("%s: unknown format %q", op, req.Format)
	}
}

// renderSVG рисует матрицу модулей как набор прямоугольников единичного
// размера внутри viewBox, масштабируемого до запрошенного числа пикселей.
func renderSVG(code *qrcode.QRCode, size int, fill string) []byte {
	grid := code.Bitmap()
	modules := len(grid)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(size, size, 0, 0, modules, modules)
	canvas.Rect(0, 0, modules, modules, "fill:#ffffff")
	style := fmt.Sprintf("fill:%s", fill)
	for y, row := range grid {
		for x, dark := range row {
			if dark {
				canvas.Rect(x, y, 1, 1, style)
			}
		}
	}
	canvas.End()
	return buf.Bytes()
}

// parseHexColor разбирает цвет вида #RGB или #RRGGBB. Формат уже проверен
// валидатором (тег hexcolor), здесь остаётся только конвертация.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid hex color length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}
