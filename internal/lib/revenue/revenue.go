// Package revenue сводит доходы и расходы зала за отчётный период.
package revenue

import (
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// Summary итоги за период. NetRevenue = MembershipRevenue - (CoachSalaryCost + MiscCost + UtilityCost).
type Summary struct {
	Window            month.Window               `json:"window"`
	MembershipRevenue decimal.Decimal            `json:"membership_revenue"`
	CoachSalaryCost   decimal.Decimal            `json:"coach_salary_cost"`
	MiscCost          decimal.Decimal            `json:"misc_cost"`
	UtilityCost       decimal.Decimal            `json:"utility_cost"`
	NetRevenue        decimal.Decimal            `json:"net_revenue"`
	ByModeOfPayment   map[string]decimal.Decimal `json:"by_mode_of_payment"`
	Counts            Counts                     `json:"counts"`
}

// Counts количество записей каждого вида, попавших в окно.
type Counts struct {
	Payments int `json:"payments"`
	Salaries int `json:"salaries"`
	Misc     int `json:"misc"`
	Bills    int `json:"bills"`
}

// TotalCost сумма всех расходов.
func (s Summary) TotalCost() decimal.Decimal {
	return s.CoachSalaryCost.Add(s.MiscCost).Add(s.UtilityCost)
}

// Aggregate отбирает записи, попадающие в окно w, и считает подытоги.
// Пустые входные срезы дают нулевые суммы. Входные данные не изменяются.
func Aggregate(w month.Window, payments []models.Payment, salaries []models.SalaryPayment,
	misc []models.MiscCost, bills []models.UtilityBill) Summary {
	s := Summary{
		Window:            w,
		MembershipRevenue: decimal.Zero,
		CoachSalaryCost:   decimal.Zero,
		MiscCost:          decimal.Zero,
		UtilityCost:       decimal.Zero,
		ByModeOfPayment:   make(map[string]decimal.Decimal),
	}

	for _, p := range payments {
		if !w.Contains(p.Date) {
			continue
		}
		s.MembershipRevenue = s.MembershipRevenue.Add(p.Price)
		s.ByModeOfPayment[p.ModeOfPayment] = s.ByModeOfPayment[p.ModeOfPayment].Add(p.Price)
		s.Counts.Payments++
	}
	for _, sp := range salaries {
		if !w.Contains(sp.PaidOn) {
			continue
		}
		s.CoachSalaryCost = s.CoachSalaryCost.Add(sp.AmountPaid)
		s.Counts.Salaries++
	}
	for _, m := range misc {
		if !w.Contains(m.Date) {
			continue
		}
		s.MiscCost = s.MiscCost.Add(m.Amount)
		s.Counts.Misc++
	}
	for _, b := range bills {
		if !w.Contains(b.PeriodIn(w.Start.Location())) {
			continue
		}
		s.UtilityCost = s.UtilityCost.Add(b.Amount)
		s.Counts.Bills++
	}

	s.NetRevenue = s.MembershipRevenue.Sub(s.TotalCost())
	return s
}
