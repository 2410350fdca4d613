// Package month содержит работу с отчётными периодами: календарный месяц как окно дат.
package month

import (
	"fmt"
	"time"
)

// Window период отчёта. Обе границы включаются.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Of возвращает окно календарного месяца: от первого дня 00:00 до последней наносекунды месяца.
func Of(year int, m time.Month, loc *time.Location) Window {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, m, 1, 0, 0, 0, 0, loc)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// Current возвращает окно месяца, в который попадает now.
func Current(now time.Time) Window {
	return Of(now.Year(), now.Month(), now.Location())
}

// Contains сообщает, попадает ли t в окно.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Key ключ окна вида 2025-03, используется для кеша отчётов.
func (w Window) Key() string {
	return fmt.Sprintf("%04d-%02d", w.Start.Year(), int(w.Start.Month()))
}
