// Package expiry вычисляет дату окончания абонемента и его статус.
// Результаты не хранятся: они каждый раз пересчитываются из платежей участника.
package expiry

import (
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// DefaultWindowDays окно "скоро истекает" в днях.
const DefaultWindowDays = 7

// Date возвращает дату окончания абонемента, начавшегося в start.
func Date(start time.Time, term planterm.PlanTerm) time.Time {
	return term.AddTo(start)
}

// IsExpired сообщает, истёк ли абонемент к моменту asOf.
func IsExpired(expiry, asOf time.Time) bool {
	return expiry.Before(asOf)
}

// IsExpiringSoon сообщает, что абонемент ещё не истёк, но закончится не позже чем через windowDays дней.
// Обе границы включаются.
func IsExpiringSoon(expiry, asOf time.Time, windowDays int) bool {
	return !expiry.Before(asOf) && !expiry.After(asOf.AddDate(0, 0, windowDays))
}

// Status сводит IsExpired и IsExpiringSoon к одному значению.
func Status(expiry, asOf time.Time, windowDays int) models.MemberStatus {
	switch {
	case IsExpired(expiry, asOf):
		return models.StatusExpired
	case IsExpiringSoon(expiry, asOf, windowDays):
		return models.StatusExpiring
	default:
		return models.StatusActive
	}
}

// Latest возвращает платёж с максимальной датой. При равных датах побеждает тот,
// что стоит в истории позже. Срез не изменяется.
func Latest(payments []models.Payment) (models.Payment, bool) {
	if len(payments) == 0 {
		return models.Payment{}, false
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if !p.Date.Before(latest.Date) {
			latest = p
		}
	}
	return latest, true
}

// Resolve определяет текущий абонемент участника: по последнему платежу,
// а если платежей нет, то по тарифу и дате регистрации.
func Resolve(member models.Member, payments []models.Payment) models.Membership {
	plan, start, source := member.Plan, member.JoinDate, models.SourceMember
	if p, ok := Latest(payments); ok {
		plan, start, source = p.Plan, p.Date, models.SourcePayment
	}

	term, parsed := planterm.Resolve(plan)
	return models.Membership{
		Plan:       plan,
		Term:       term,
		Start:      start,
		Expiry:     Date(start, term),
		Source:     source,
		ParsedPlan: parsed,
	}
}

// View собирает представление участника со статусом абонемента на дату asOf.
func View(member models.Member, payments []models.Payment, asOf time.Time, windowDays int) models.MemberView {
	m := Resolve(member, payments)
	return models.MemberView{
		Member:     member,
		Membership: m,
		Status:     Status(m.Expiry, asOf, windowDays),
	}
}

// ViewAll строит представления для всех участников по общей истории платежей.
// Порядок участников сохраняется, порядок платежей внутри участника тоже.
func ViewAll(members []*models.Member, payments []models.Payment, asOf time.Time, windowDays int) []models.MemberView {
	byMember := make(map[uuid.UUID][]models.Payment, len(members))
	for _, p := range payments {
		byMember[p.MemberID] = append(byMember[p.MemberID], p)
	}

	views := make([]models.MemberView, 0, len(members))
	for _, m := range members {
		if m == nil {
			continue
		}
		views = append(views, View(*m, byMember[m.ID], asOf, windowDays))
	}
	return views
}
