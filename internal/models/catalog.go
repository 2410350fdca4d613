package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
)

// MembershipPlan тариф из каталога. Descriptor разбирается planterm.Parse.
type MembershipPlan struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Descriptor  string          `json:"descriptor"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// PlanView тариф вместе с разобранным сроком.
type PlanView struct {
	Plan       MembershipPlan    `json:"plan"`
	Term       planterm.PlanTerm `json:"term"`
	ParsedPlan bool              `json:"parsed_plan"`
}

// PlanPreview результат предварительного расчёта срока и даты окончания.
type PlanPreview struct {
	Term       planterm.PlanTerm `json:"term"`
	ParsedPlan bool              `json:"parsed_plan"`
	Start      time.Time         `json:"start"`
	Expiry     time.Time         `json:"expiry"`
}

// DummyPlan используется для приёма данных тарифа из JSON-запроса.
type DummyPlan struct {
	Name        string          `json:"name" validate:"required"`
	Descriptor  string          `json:"descriptor"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// DummyPlanPreview запрос предварительного расчёта.
type DummyPlanPreview struct {
	Descriptor string `json:"descriptor" validate:"required"`
	StartDate  string `json:"start_date" validate:"required"`
}

// InventoryItem единица инвентаря зала.
type InventoryItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	PurchasedOn time.Time       `json:"purchased_on"`
	Condition   string          `json:"condition"`
}

// DummyInventoryItem используется для приёма данных инвентаря.
type DummyInventoryItem struct {
	Name        string          `json:"name" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	PurchasedOn string          `json:"purchased_on" validate:"required"`
	Condition   string          `json:"condition" validate:"omitempty,oneof=new good worn broken"`
}
