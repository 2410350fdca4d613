// Package services содержит общие для бизнес-сервисов ошибки и правила разбора входных данных.
// Сами сервисы лежат во вложенных пакетах: member, plan, coach, expense, inventory, report,
// scheduler и sender.
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/gym-dashboard/internal/cache"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

var (
	// ErrNegativeAmount денежная сумма меньше нуля.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidDate дата не в формате 02-01-2006.
	ErrInvalidDate = errors.New("invalid date, expected DD-MM-YYYY")
	// ErrInvalidStatus неизвестный фильтр статуса абонемента.
	ErrInvalidStatus = errors.New("unknown membership status")
	// ErrInvalidPeriod месяц или год отчёта вне допустимого диапазона.
	ErrInvalidPeriod = errors.New("invalid report period")
)

// ParseDate разбирает дату из запроса. Результат в UTC, полночь.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s %q: %w", field, value, ErrInvalidDate)
	}
	return t, nil
}

// CheckAmount проверяет, что сумма не отрицательна.
func CheckAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%s %s: %w", field, amount.String(), ErrNegativeAmount)
	}
	return nil
}

// Today возвращает полночь текущих суток в UTC. С ней сравниваются даты окончания абонементов.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReportKeyFor возвращает ключ кеша отчёта за месяц, в который попадает t.
func ReportKeyFor(t time.Time) string {
	return cache.ReportKey(month.Current(t).Key())
}
