// Package models содержит доменные структуры запроса на генерацию QR-кода,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Типы содержимого QR-кода.
const (
	ContentTypeURL     = "URL"
	ContentTypeText    = "TEXT"
	ContentTypeContact = "CONTACT"
)

// Уровни коррекции ошибок по стандарту QR.
const (
	CorrectionLevelL = "L"
	CorrectionLevelM = "M"
	CorrectionLevelQ = "Q"
	CorrectionLevelH = "H"
)

// Форматы выходного изображения.
const (
	FormatPNG = "PNG"
	FormatSVG = "SVG"
)

// QRRequest представляет одну запись о сгенерированном QR-коде.
// Запись неизменяема: создаётся при каждом вызове API и никогда не обновляется.
type QRRequest struct {
	ID              string    // Уникальный идентификатор запроса
	UserUID         string    // Идентификатор пользователя-владельца
	ContentType     string    // Тип содержимого: URL, TEXT или CONTACT
	Content         string    // Кодируемая строка
	Size            int       // Размер изображения в пикселях
	Color           string    // Цвет модулей в hex-формате
	CorrectionLevel string    // Уровень коррекции ошибок: L, M, Q или H
	Format          string    // Формат изображения: PNG или SVG
	CreatedAt       time.Time // Дата создания записи
}

// DummyRequest используется для приёма данных из JSON-запроса генерации,
// прежде чем конвертировать их в QRRequest. Принадлежность к закрытым
// множествам значений проверяется валидатором до записи в хранилище.
type DummyRequest struct {
	ContentType     string `json:"content_type" validate:"required,oneof=URL TEXT CONTACT"` // Тип содержимого
	Content         string `json:"content" validate:"required"`                             // Содержимое
	Size            int    `json:"size" validate:"required,gt=0,lte=2048"`                  // Размер в пикселях (>0)
	Color           string `json:"color" validate:"required,hexcolor"`                      // Цвет в hex-формате
	CorrectionLevel string `json:"correction_level" validate:"required,oneof=L M Q H"`      // Уровень коррекции
	Format          string `json:"format" validate:"required,oneof=PNG SVG"`                // Формат изображения
}
