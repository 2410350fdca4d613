// Package expense ведёт прочие расходы и коммунальные счета зала.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

// Repository определяет методы хранилища для расходов.
type Repository interface {
	CreateMiscCost(ctx context.Context, m models.MiscCost) (int64, error)
	ReadMiscCost(ctx context.Context, id int64) (*models.MiscCost, error)
	ListMiscCosts(ctx context.Context) ([]models.MiscCost, error)
	RemoveMiscCost(ctx context.Context, id int64) error

	CreateUtilityBill(ctx context.Context, b models.UtilityBill) (int64, error)
	ReadUtilityBill(ctx context.Context, id int64) (*models.UtilityBill, error)
	ListUtilityBills(ctx context.Context) ([]models.UtilityBill, error)
	RemoveUtilityBill(ctx context.Context, id int64) error
}

// Cache нужен только для сброса месячных отчётов.
type Cache interface {
	Invalidate(keys ...string) error
}

// Service бизнес-логика расходов.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает сервис расходов.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// CreateMisc записывает прочий расход.
func (s *Service) CreateMisc(ctx context.Context, req models.DummyMiscCost) (int64, error) {
	const op = "expense.CreateMisc"
	date, err := services.ParseDate("date", req.Date)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("amount", req.Amount); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateMiscCost(ctx, models.MiscCost{
		Title:  strings.TrimSpace(req.Title),
		Amount: req.Amount,
		Date:   date,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created misc cost", slog.Int64("id", id), slog.String("amount", req.Amount.String()))

	s.invalidate(services.ReportKeyFor(date))
	return id, nil
}

// ListMisc возвращает все прочие расходы.
func (s *Service) ListMisc(ctx context.Context) ([]models.MiscCost, error) {
	const op = "expense.ListMisc"
	items, err := s.repo.ListMiscCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// RemoveMisc удаляет прочий расход.
func (s *Service) RemoveMisc(ctx context.Context, id int64) error {
	const op = "expense.RemoveMisc"
	item, err := s.repo.ReadMiscCost(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.RemoveMiscCost(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed misc cost", slog.Int64("id", id))

	s.invalidate(services.ReportKeyFor(item.Date))
	return nil
}

// CreateBill записывает коммунальный счёт за месяц.
func (s *Service) CreateBill(ctx context.Context, req models.DummyUtilityBill) (int64, error) {
	const op = "expense.CreateBill"
	if req.Month < 1 || req.Month > 12 {
		return 0, fmt.Errorf("%s: month %d: %w", op, req.Month, services.ErrInvalidPeriod)
	}
	if err := services.CheckAmount("amount", req.Amount); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	bill := models.UtilityBill{
		Kind:   req.Kind,
		Amount: req.Amount,
		Month:  req.Month,
		Year:   req.Year,
	}
	id, err := s.repo.CreateUtilityBill(ctx, bill)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created utility bill", slog.Int64("id", id), slog.String("kind", req.Kind))

	s.invalidate(services.ReportKeyFor(bill.Period()))
	return id, nil
}

// ListBills возвращает все коммунальные счета.
func (s *Service) ListBills(ctx context.Context) ([]models.UtilityBill, error) {
	const op = "expense.ListBills"
	bills, err := s.repo.ListUtilityBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bills, nil
}

// RemoveBill удаляет коммунальный счёт.
func (s *Service) RemoveBill(ctx context.Context, id int64) error {
	const op = "expense.RemoveBill"
	bill, err := s.repo.ReadUtilityBill(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.RemoveUtilityBill(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed utility bill", slog.Int64("id", id))

	s.invalidate(services.ReportKeyFor(bill.Period()))
	return nil
}

func (s *Service) invalidate(keys ...string) {
	if err := s.cache.Invalidate(keys...); err != nil {
		s.log.Warn("failed to invalidate cache", slog.Any("keys", keys), sl.Err(err))
	}
}
