package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// CreateCoach сохраняет тренера.
func (s *Storage) CreateCoach(ctx context.Context, c models.Coach) error {
	const op = "storage.CreateCoach"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO coaches (id, name, phone, speciality, salary, join_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Phone, c.Speciality, c.Salary, c.JoinDate)
	if err != nil {
		return mapError(op, err)
	}
	return nil
}

// ListCoaches возвращает всех тренеров.
func (s *Storage) ListCoaches(ctx context.Context) ([]*models.Coach, error) {
	const op = "storage.ListCoaches"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, phone, speciality, salary, join_date FROM coaches ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Coach
	for rows.Next() {
		var c models.Coach
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Speciality, &c.Salary, &c.JoinDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveCoach удаляет тренера вместе с историей выплат.
func (s *Storage) RemoveCoach(ctx context.Context, id uuid.UUID) error {
	const op = "storage.RemoveCoach"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}

// AddSalaryPayment сохраняет выплату тренеру.
func (s *Storage) AddSalaryPayment(ctx context.Context, sp models.SalaryPayment) (int64, error) {
	const op = "storage.AddSalaryPayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO salary_payments (coach_id, amount_paid, paid_on)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sp.CoachID, sp.AmountPaid, sp.PaidOn).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ListSalaryPayments возвращает выплаты тренеру.
func (s *Storage) ListSalaryPayments(ctx context.Context, coachID uuid.UUID) ([]models.SalaryPayment, error) {
	const op = "storage.ListSalaryPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.querySalaries(ctx, op,
		`SELECT id, coach_id, amount_paid, paid_on FROM salary_payments WHERE coach_id = $1 ORDER BY id`, coachID)
}

// ListSalaryPaymentsBetween возвращает выплаты всем тренерам с датой в [start, end].
func (s *Storage) ListSalaryPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error) {
	const op = "storage.ListSalaryPaymentsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.querySalaries(ctx, op,
		`SELECT id, coach_id, amount_paid, paid_on FROM salary_payments
		 WHERE paid_on >= $1::date AND paid_on <= $2::date ORDER BY id`, start, end)
}

func (s *Storage) querySalaries(ctx context.Context, op, query string, args ...any) ([]models.SalaryPayment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.SalaryPayment
	for rows.Next() {
		var sp models.SalaryPayment
		if err := rows.Scan(&sp.ID, &sp.CoachID, &sp.AmountPaid, &sp.PaidOn); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
