package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// CreatePlan добавляет тариф в каталог. Имя тарифа уникально.
func (s *Storage) CreatePlan(ctx context.Context, plan models.MembershipPlan) (int64, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO membership_plans (name, descriptor, price, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		plan.Name, plan.Descriptor, plan.Price, plan.Description).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ListPlans возвращает каталог тарифов.
func (s *Storage) ListPlans(ctx context.Context) ([]*models.MembershipPlan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, descriptor, price, description FROM membership_plans ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MembershipPlan
	for rows.Next() {
		var p models.MembershipPlan
		if err := rows.Scan(&p.ID, &p.Name, &p.Descriptor, &p.Price, &p.Description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemovePlan удаляет тариф из каталога. Платежи хранят название тарифа строкой и не затрагиваются.
func (s *Storage) RemovePlan(ctx context.Context, id int64) error {
	const op = "storage.RemovePlan"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM membership_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}

// ReadPlanByName ищет тариф по имени без учёта регистра.
func (s *Storage) ReadPlanByName(ctx context.Context, name string) (*models.MembershipPlan, error) {
	const op = "storage.ReadPlanByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var p models.MembershipPlan
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, descriptor, price, description FROM membership_plans WHERE lower(name) = lower($1)`,
		name).Scan(&p.ID, &p.Name, &p.Descriptor, &p.Price, &p.Description)
	if err != nil {
		return nil, mapError(op, err)
	}
	return &p, nil
}
