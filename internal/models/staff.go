package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Coach тренер зала. Salary хранит оговорённый месячный оклад, фактические выплаты в SalaryPayment.
type Coach struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Speciality string          `json:"speciality"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   time.Time       `json:"join_date"`
}

// SalaryPayment выплата зарплаты тренеру.
type SalaryPayment struct {
	ID         int64           `json:"id"`
	CoachID    uuid.UUID       `json:"coach_id"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	PaidOn     time.Time       `json:"paid_on"`
}

// DummyCoach используется для приёма данных тренера из JSON-запроса.
type DummyCoach struct {
	Name       string          `json:"name" validate:"required"`
	Phone      string          `json:"phone" validate:"omitempty,numeric"`
	Speciality string          `json:"speciality"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date" validate:"required"`
}

// DummySalary используется для приёма данных о выплате зарплаты.
type DummySalary struct {
	AmountPaid decimal.Decimal `json:"amount_paid"`
	PaidOn     string          `json:"paid_on" validate:"required"`
}
