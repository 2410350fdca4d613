package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MiscCost прочий расход зала.
type MiscCost struct {
	ID     int64           `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// UtilityBill коммунальный счёт за месяц.
type UtilityBill struct {
	ID     int64           `json:"id"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Month  int             `json:"month"`
	Year   int             `json:"year"`
}

// Period возвращает первый день месяца, за который выставлен счёт (UTC).
func (b UtilityBill) Period() time.Time {
	return b.PeriodIn(time.UTC)
}

// PeriodIn как Period, но в указанной локации.
func (b UtilityBill) PeriodIn(loc *time.Location) time.Time {
	return time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, loc)
}

// DummyMiscCost используется для приёма данных о прочем расходе.
type DummyMiscCost struct {
	Title  string          `json:"title" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date" validate:"required"`
}

// DummyUtilityBill используется для приёма данных о коммунальном счёте.
type DummyUtilityBill struct {
	Kind   string          `json:"kind" validate:"required,oneof=electricity water internet rent other"`
	Amount decimal.Decimal `json:"amount"`
	Month  int             `json:"month" validate:"required,min=1,max=12"`
	Year   int             `json:"year" validate:"required,min=2000"`
}
