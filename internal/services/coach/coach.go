// Package coach ведёт тренеров и выплаты им зарплаты.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

// Repository определяет методы хранилища для тренеров.
type Repository interface {
	CreateCoach(ctx context.Context, c models.Coach) error
	ListCoaches(ctx context.Context) ([]*models.Coach, error)
	RemoveCoach(ctx context.Context, id uuid.UUID) error
	AddSalaryPayment(ctx context.Context, sp models.SalaryPayment) (int64, error)
	ListSalaryPayments(ctx context.Context, coachID uuid.UUID) ([]models.SalaryPayment, error)
}

// Cache нужен только для сброса месячных отчётов.
type Cache interface {
	Invalidate(keys ...string) error
}

// Service бизнес-логика тренеров.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает сервис тренеров.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, log: log}
}

// Create добавляет тренера и возвращает его ID.
func (s *Service) Create(ctx context.Context, req models.DummyCoach) (uuid.UUID, error) {
	const op = "coach.Create"
	joined, err := services.ParseDate("join_date", req.JoinDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("salary", req.Salary); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	c := models.Coach{
		ID:         uuid.New(),
		Name:       req.Name,
		Phone:      req.Phone,
		Speciality: req.Speciality,
		Salary:     req.Salary,
		JoinDate:   joined,
	}
	if err := s.repo.CreateCoach(ctx, c); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created coach", slog.String("coach_id", c.ID.String()))
	return c.ID, nil
}

// List возвращает всех тренеров.
func (s *Service) List(ctx context.Context) ([]*models.Coach, error) {
	const op = "coach.List"
	coaches, err := s.repo.ListCoaches(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return coaches, nil
}

// Remove удаляет тренера вместе с историей выплат.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	const op = "coach.Remove"
	salaries, err := s.repo.ListSalaryPayments(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.RemoveCoach(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed coach", slog.String("coach_id", id.String()))

	dates := make([]time.Time, 0, len(salaries))
	for _, sp := range salaries {
		dates = append(dates, sp.PaidOn)
	}
	s.invalidateReports(dates...)
	return nil
}

// PaySalary записывает выплату зарплаты тренеру.
func (s *Service) PaySalary(ctx context.Context, coachID uuid.UUID, req models.DummySalary) (int64, error) {
	const op = "coach.PaySalary"
	paidOn, err := services.ParseDate("paid_on", req.PaidOn)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("amount_paid", req.AmountPaid); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.AddSalaryPayment(ctx, models.SalaryPayment{
		CoachID:    coachID,
		AmountPaid: req.AmountPaid,
		PaidOn:     paidOn,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("paid salary", slog.String("coach_id", coachID.String()), slog.Int64("id", id))

	s.invalidateReports(paidOn)
	return id, nil
}

// Salaries возвращает выплаты тренеру.
func (s *Service) Salaries(ctx context.Context, coachID uuid.UUID) ([]models.SalaryPayment, error) {
	const op = "coach.Salaries"
	salaries, err := s.repo.ListSalaryPayments(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return salaries, nil
}

func (s *Service) invalidateReports(dates ...time.Time) {
	if len(dates) == 0 {
		return
	}
	seen := make(map[string]bool, len(dates))
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		if key := services.ReportKeyFor(d); !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	if err := s.cache.Invalidate(keys...); err != nil {
		s.log.Warn("failed to invalidate cache", slog.Any("keys", keys), sl.Err(err))
	}
}
