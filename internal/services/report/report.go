// Package report строит месячный отчёт о выручке и сводку для главной страницы панели.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-dashboard/internal/cache"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/month"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/revenue"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

// Repository определяет выборки, из которых собирается отчёт.
type Repository interface {
	ListPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.Payment, error)
	ListSalaryPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error)
	ListMiscCostsBetween(ctx context.Context, start, end time.Time) ([]models.MiscCost, error)
	ListUtilityBillsBetween(ctx context.Context, start, end time.Time) ([]models.UtilityBill, error)
	ListAllMembers(ctx context.Context) ([]*models.Member, error)
	ListAllPayments(ctx context.Context) ([]models.Payment, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Dashboard сводка на дату AsOf.
type Dashboard struct {
	AsOf         time.Time           `json:"as_of"`
	TotalMembers int                 `json:"total_members"`
	Active       int                 `json:"active"`
	Expiring     int                 `json:"expiring"`
	Expired      int                 `json:"expired"`
	UnparsedPlan int                 `json:"unparsed_plans"`
	ExpiringSoon []models.MemberView `json:"expiring_soon"`
	Month        revenue.Summary     `json:"month"`
}

// Service бизнес-логика отчётов.
type Service struct {
	repo       Repository
	cache      Cache
	log        *slog.Logger
	ttl        time.Duration
	windowDays int
	now        func() time.Time
}

// New создает сервис отчётов. ttl время жизни отчёта в кеше.
func New(repo Repository, cache Cache, log *slog.Logger, ttl time.Duration, windowDays int) *Service {
	if windowDays <= 0 {
		windowDays = expiry.DefaultWindowDays
	}
	return &Service{
		repo:       repo,
		cache:      cache,
		log:        log,
		ttl:        ttl,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// MonthlyRevenue возвращает итоги за календарный месяц. Нулевой year или m заменяется текущим годом или месяцем.
func (s *Service) MonthlyRevenue(ctx context.Context, year int, m time.Month) (*revenue.Summary, error) {
	const op = "report.MonthlyRevenue"
	// недостающая часть периода берётся из текущей даты
	now := s.now().UTC()
	if year == 0 {
		year = now.Year()
	}
	if m == 0 {
		m = now.Month()
	}
	if year < 1 || m < time.January || m > time.December {
		return nil, fmt.Errorf("%s: %d-%d: %w", op, year, m, services.ErrInvalidPeriod)
	}

	w := month.Of(year, m, time.UTC)
	key := cache.ReportKey(w.Key())

	var cached revenue.Summary
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found && err == nil {
		metrics.ReportCache.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	metrics.ReportCache.WithLabelValues("miss").Inc()

	summary, err := s.aggregate(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(key, summary, s.ttl); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return &summary, nil
}

func (s *Service) aggregate(ctx context.Context, w month.Window) (revenue.Summary, error) {
	payments, err := s.repo.ListPaymentsBetween(ctx, w.Start, w.End)
	if err != nil {
		return revenue.Summary{}, err
	}
	salaries, err := s.repo.ListSalaryPaymentsBetween(ctx, w.Start, w.End)
	if err != nil {
		return revenue.Summary{}, err
	}
	misc, err := s.repo.ListMiscCostsBetween(ctx, w.Start, w.End)
	if err != nil {
		return revenue.Summary{}, err
	}
	bills, err := s.repo.ListUtilityBillsBetween(ctx, w.Start, w.End)
	if err != nil {
		return revenue.Summary{}, err
	}

	summary := revenue.Aggregate(w, payments, salaries, misc, bills)
	s.log.Debug("aggregated monthly revenue",
		slog.String("period", w.Key()),
		slog.String("net", summary.NetRevenue.String()),
	)
	return summary, nil
}

// Dashboard собирает счётчики участников по статусам и итоги текущего месяца.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	const op = "report.Dashboard"
	now := s.now()
	asOf := services.Today(now)

	members, err := s.repo.ListAllMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	payments, err := s.repo.ListAllPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	d := &Dashboard{AsOf: asOf, ExpiringSoon: []models.MemberView{}}
	for _, v := range expiry.ViewAll(members, payments, asOf, s.windowDays) {
		d.TotalMembers++
		if !v.Membership.ParsedPlan {
			d.UnparsedPlan++
		}
		switch v.Status {
		case models.StatusActive:
			d.Active++
		case models.StatusExpiring:
			d.Expiring++
			d.ExpiringSoon = append(d.ExpiringSoon, v)
		case models.StatusExpired:
			d.Expired++
		}
	}

	current, err := s.MonthlyRevenue(ctx, asOf.Year(), asOf.Month())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	d.Month = *current
	return d, nil
}
