// Package planterm разбирает строковое описание тарифа ("Monthly", "Custom(10 days)", "3 months")
// в нормализованный срок абонемента: количество и единицу измерения.
package planterm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Unit единица срока абонемента.
type Unit int

const (
	// Day срок в днях.
	Day Unit = iota + 1
	// Month срок в календарных месяцах.
	Month
	// Year срок в календарных годах.
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// MarshalJSON сериализует единицу как строку day|month|year.
func (u Unit) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON принимает строку day|month|year (в том числе во множественном числе).
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	unit, ok := unitWords[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("planterm: unknown unit %q", s)
	}
	*u = unit
	return nil
}

// PlanTerm срок абонемента. Quantity всегда >= 1.
type PlanTerm struct {
	Quantity int  `json:"quantity"`
	Unit     Unit `json:"unit"`
}

// Default срок, который используется, если описание тарифа не удалось разобрать.
var Default = PlanTerm{Quantity: 1, Unit: Month}

// String возвращает каноническое описание срока, например "3 months".
func (p PlanTerm) String() string {
	if p.Quantity == 1 {
		return fmt.Sprintf("1 %s", p.Unit)
	}
	return fmt.Sprintf("%d %ss", p.Quantity, p.Unit)
}

// AddTo прибавляет срок к дате. Переполнение дня месяца нормализуется так же, как в time.AddDate:
// 31 января + 1 месяц = 3 марта (в невисокосный год).
func (p PlanTerm) AddTo(t time.Time) time.Time {
	switch p.Unit {
	case Day:
		return t.AddDate(0, 0, p.Quantity)
	case Year:
		return t.AddDate(p.Quantity, 0, 0)
	default:
		return t.AddDate(0, p.Quantity, 0)
	}
}

var numericPlan = regexp.MustCompile(`(?i)^\s*(?:custom\s*\(\s*)?(\d+)\s*(days?|months?|years?)\s*\)?\s*$`)

var unitWords = map[string]Unit{
	"day":    Day,
	"days":   Day,
	"month":  Month,
	"months": Month,
	"year":   Year,
	"years":  Year,
}

var namedPlans = map[string]PlanTerm{
	"monthly":     {Quantity: 1, Unit: Month},
	"quarterly":   {Quantity: 3, Unit: Month},
	"half yearly": {Quantity: 6, Unit: Month},
	"yearly":      {Quantity: 1, Unit: Year},
}

// Parse возвращает срок для описания тарифа. Нераспознанные строки молча получают Default.
func Parse(plan string) PlanTerm {
	term, _ := Resolve(plan)
	return term
}

// Resolve работает как Parse, но вторым значением сообщает, удалось ли распознать описание.
// false означает, что был применён Default.
//
// Числовой шаблон проверяется раньше таблицы имён: тариф с названием "12 months" разбирается как число.
func Resolve(plan string) (PlanTerm, bool) {
	if m := numericPlan.FindStringSubmatch(plan); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err == nil && qty >= 1 {
			return PlanTerm{Quantity: qty, Unit: unitWords[strings.ToLower(m[2])]}, true
		}
	}

	if term, ok := namedPlans[strings.ToLower(strings.TrimSpace(plan))]; ok {
		return term, true
	}

	return Default, false
}
