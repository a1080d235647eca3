// Package models содержит доменную модель пользователя сервиса,
// включающую уникальные email и API-ключ, роль и даты создания.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей. Закрытое множество значений, проверяется
// валидатором и CHECK-ограничением в базе.
const (
	RoleAdmin   = "admin"
	RolePremium = "premium"
	RoleBasic   = "basic"
)

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	UID       string    // Уникальный идентификатор пользователя
	Email     string    // Электронная почта (уникальная)
	APIKey    string    // Опаковый API-ключ для аутентификации (уникальный)
	Role      string    // Роль пользователя: admin, premium или basic
	CreatedAt time.Time // Дата создания записи
	UpdatedAt time.Time // Дата последнего изменения
}

// DummyUser используется для приёма данных из JSON-запроса регистрации,
// прежде чем конвертировать их в User. Роль опциональна, по умолчанию basic.
type DummyUser struct {
	Email string `json:"email" validate:"required,email"`                 // Электронная почта
	Role  string `json:"role,omitempty" validate:"omitempty,oneof=admin premium basic"` // Роль (опционально)
}

// VerifyResult описывает результат проверки API-ключа.
type VerifyResult struct {
	IsValid bool   `json:"is_valid"`
	UserUID string `json:"user_uid,omitempty"`
	Role    string `json:"role,omitempty"`
}
