// Package models содержит доменные структуры панели администратора зала:
// участники и их платежи, тарифы, тренеры и выплаты, расходы и инвентарь,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
)

// DateLayout формат дат во входящих запросах.
const DateLayout = "02-01-2006"

// Member участник зала. Plan и JoinDate описывают тариф на момент регистрации;
// актуальный тариф определяется по последнему платежу.
type Member struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email"`
	Plan          string          `json:"plan"`
	Price         decimal.Decimal `json:"price"`
	JoinDate      time.Time       `json:"join_date"`
	ModeOfPayment string          `json:"mode_of_payment"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Payment оплата абонемента участником.
type Payment struct {
	ID            int64           `json:"id"`
	MemberID      uuid.UUID       `json:"member_id"`
	Plan          string          `json:"plan"`
	Price         decimal.Decimal `json:"price"`
	Date          time.Time       `json:"date"`
	ModeOfPayment string          `json:"mode_of_payment"`
}

// Источник, из которого взяты тариф и дата начала абонемента.
const (
	SourcePayment = "payment"
	SourceMember  = "member"
)

// Membership вычисленное состояние абонемента. Никогда не хранится в базе.
type Membership struct {
	Plan       string            `json:"plan"`
	Term       planterm.PlanTerm `json:"term"`
	Start      time.Time         `json:"start"`
	Expiry     time.Time         `json:"expiry"`
	Source     string            `json:"source"`
	ParsedPlan bool              `json:"parsed_plan"`
}

// MemberStatus статус абонемента относительно текущей даты.
type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusExpiring MemberStatus = "expiring"
	StatusExpired  MemberStatus = "expired"
)

// MemberView участник вместе с вычисленным абонементом, отдаётся наружу через API.
type MemberView struct {
	Member     Member       `json:"member"`
	Membership Membership   `json:"membership"`
	Status     MemberStatus `json:"status"`
}

// ExpiringMember сообщение для очереди уведомлений об окончании абонемента.
type ExpiringMember struct {
	MemberID uuid.UUID `json:"member_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Plan     string    `json:"plan"`
	Expiry   time.Time `json:"expiry"`
}

// DummyMember используется для приёма данных участника из JSON-запроса.
// Дата приходит строкой в формате 02-01-2006.
type DummyMember struct {
	Name          string          `json:"name" validate:"required"`
	Phone         string          `json:"phone" validate:"omitempty,numeric"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Plan          string          `json:"plan" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	JoinDate      string          `json:"join_date" validate:"required"`
	ModeOfPayment string          `json:"mode_of_payment" validate:"required"`
}

// DummyPayment используется для приёма данных о продлении абонемента.
type DummyPayment struct {
	Plan          string          `json:"plan" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	Date          string          `json:"date" validate:"required"`
	ModeOfPayment string          `json:"mode_of_payment" validate:"required"`
}
