// Package plan ведёт каталог тарифов и рассчитывает срок абонемента по описанию тарифа.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

// Repository определяет методы хранилища для каталога тарифов.
type Repository interface {
	CreatePlan(ctx context.Context, plan models.MembershipPlan) (int64, error)
	ListPlans(ctx context.Context) ([]*models.MembershipPlan, error)
	RemovePlan(ctx context.Context, id int64) error
	ReadPlanByName(ctx context.Context, name string) (*models.MembershipPlan, error)
}

// Service бизнес-логика каталога тарифов.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис тарифов.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create добавляет тариф. Если описание срока не задано, разбирается имя тарифа.
// Нераспознанное описание сохраняется, а в лог пишется предупреждение.
func (s *Service) Create(ctx context.Context, req models.DummyPlan) (int64, error) {
	const op = "plan.Create"
	if err := services.CheckAmount("price", req.Price); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	descriptor := strings.TrimSpace(req.Descriptor)
	if descriptor == "" {
		descriptor = req.Name
	}
	term, ok := planterm.Resolve(descriptor)
	if !ok {
		s.log.Warn("plan descriptor not recognised, using default term",
			slog.String("descriptor", descriptor),
			slog.String("term", term.String()),
		)
	}

	id, err := s.repo.CreatePlan(ctx, models.MembershipPlan{
		Name:        strings.TrimSpace(req.Name),
		Descriptor:  descriptor,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created plan", slog.Int64("id", id), slog.String("term", term.String()))
	return id, nil
}

// List возвращает каталог с разобранным сроком каждого тарифа.
func (s *Service) List(ctx context.Context) ([]models.PlanView, error) {
	const op = "plan.List"
	plans, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	views := make([]models.PlanView, 0, len(plans))
	for _, p := range plans {
		term, ok := planterm.Resolve(p.Descriptor)
		views = append(views, models.PlanView{Plan: *p, Term: term, ParsedPlan: ok})
	}
	return views, nil
}

// Remove удаляет тариф из каталога.
func (s *Service) Remove(ctx context.Context, id int64) error {
	const op = "plan.Remove"
	if err := s.repo.RemovePlan(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed plan", slog.Int64("id", id))
	return nil
}

// Preview рассчитывает срок и дату окончания абонемента, начатого в start_date.
// Descriptor может быть именем тарифа из каталога или самим описанием срока.
func (s *Service) Preview(ctx context.Context, req models.DummyPlanPreview) (*models.PlanPreview, error) {
	const op = "plan.Preview"
	start, err := services.ParseDate("start_date", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	descriptor := req.Descriptor
	stored, err := s.repo.ReadPlanByName(ctx, strings.TrimSpace(req.Descriptor))
	switch {
	case err == nil:
		descriptor = stored.Descriptor
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	term, ok := planterm.Resolve(descriptor)
	return &models.PlanPreview{
		Term:       term,
		ParsedPlan: ok,
		Start:      start,
		Expiry:     expiry.Date(start, term),
	}, nil
}
