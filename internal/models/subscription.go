// Package models содержит доменную структуру подписки — записи о платёжном
// периоде пользователя с собственным жизненным циклом.
package models

import "time"

// Типы платёжного периода.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Статусы подписки.
const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// Subscription представляет платёжный период пользователя.
type Subscription struct {
	ID        int       // Уникальный идентификатор записи
	UserUID   string    // Идентификатор пользователя-владельца
	PlanType  string    // Тип периода: monthly или yearly
	Status    string    // Статус: active или inactive
	StartDate time.Time // Дата начала периода
	EndDate   time.Time // Дата окончания периода
	CreatedAt time.Time // Дата создания записи
}

// DummySubscription используется для приёма данных из JSON-запроса
// на создание подписки.
type DummySubscription struct {
	PlanType string `json:"plan_type" validate:"required,oneof=monthly yearly"` // Тип периода
}
