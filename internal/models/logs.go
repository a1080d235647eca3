// Package models содержит структуры журналов аудита. Оба журнала
// append-only: записи вставляются и никогда не изменяются.
package models

import "time"

// AccessLog представляет запись журнала доступа. Привязана к пользователю,
// удаляется каскадно вместе с ним.
type AccessLog struct {
	ID         int       // Уникальный идентификатор записи
	UserUID    string    // Идентификатор пользователя
	Endpoint   string    // Путь запроса
	Method     string    // HTTP-метод
	StatusCode int       // Код ответа
	CreatedAt  time.Time // Момент обращения
}

// ErrorLog представляет запись журнала ошибок. Ссылка на пользователя
// опциональна: при удалении пользователя запись сохраняется с пустым UserUID.
type ErrorLog struct {
	ID        int       // Уникальный идентификатор записи
	UserUID   *string   // Идентификатор пользователя (nil после его удаления)
	Endpoint  string    // Конечная точка, на которой произошла ошибка
	Message   string    // Текст ошибки
	CreatedAt time.Time // Момент ошибки
}
