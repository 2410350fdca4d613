package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// CreateMiscCost сохраняет прочий расход.
func (s *Storage) CreateMiscCost(ctx context.Context, m models.MiscCost) (int64, error) {
	const op = "storage.CreateMiscCost"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO misc_costs (title, amount, date) VALUES ($1, $2, $3) RETURNING id`,
		m.Title, m.Amount, m.Date).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ReadMiscCost возвращает прочий расход по ID.
func (s *Storage) ReadMiscCost(ctx context.Context, id int64) (*models.MiscCost, error) {
	const op = "storage.ReadMiscCost"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var m models.MiscCost
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, title, amount, date FROM misc_costs WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.Amount, &m.Date)
	if err != nil {
		return nil, mapError(op, err)
	}
	return &m, nil
}

// ListMiscCosts возвращает все прочие расходы.
func (s *Storage) ListMiscCosts(ctx context.Context) ([]models.MiscCost, error) {
	const op = "storage.ListMiscCosts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryMisc(ctx, op, `SELECT id, title, amount, date FROM misc_costs ORDER BY date DESC, id`)
}

// ListMiscCostsBetween возвращает прочие расходы с датой в [start, end].
func (s *Storage) ListMiscCostsBetween(ctx context.Context, start, end time.Time) ([]models.MiscCost, error) {
	const op = "storage.ListMiscCostsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryMisc(ctx, op,
		`SELECT id, title, amount, date FROM misc_costs
		 WHERE date >= $1::date AND date <= $2::date ORDER BY id`, start, end)
}

// RemoveMiscCost удаляет прочий расход.
func (s *Storage) RemoveMiscCost(ctx context.Context, id int64) error {
	const op = "storage.RemoveMiscCost"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM misc_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}

func (s *Storage) queryMisc(ctx context.Context, op, query string, args ...any) ([]models.MiscCost, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.MiscCost
	for rows.Next() {
		var m models.MiscCost
		if err := rows.Scan(&m.ID, &m.Title, &m.Amount, &m.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateUtilityBill сохраняет коммунальный счёт.
func (s *Storage) CreateUtilityBill(ctx context.Context, b models.UtilityBill) (int64, error) {
	const op = "storage.CreateUtilityBill"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO utility_bills (kind, amount, month, year) VALUES ($1, $2, $3, $4) RETURNING id`,
		b.Kind, b.Amount, b.Month, b.Year).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ReadUtilityBill возвращает коммунальный счёт по ID.
func (s *Storage) ReadUtilityBill(ctx context.Context, id int64) (*models.UtilityBill, error) {
	const op = "storage.ReadUtilityBill"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var b models.UtilityBill
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, kind, amount, month, year FROM utility_bills WHERE id = $1`, id).
		Scan(&b.ID, &b.Kind, &b.Amount, &b.Month, &b.Year)
	if err != nil {
		return nil, mapError(op, err)
	}
	return &b, nil
}

// ListUtilityBills возвращает все коммунальные счета.
func (s *Storage) ListUtilityBills(ctx context.Context) ([]models.UtilityBill, error) {
	const op = "storage.ListUtilityBills"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryBills(ctx, op,
		`SELECT id, kind, amount, month, year FROM utility_bills ORDER BY year DESC, month DESC, id`)
}

// ListUtilityBillsBetween возвращает счета, месяц которых попадает в [start, end].
func (s *Storage) ListUtilityBillsBetween(ctx context.Context, start, end time.Time) ([]models.UtilityBill, error) {
	const op = "storage.ListUtilityBillsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	from := start.Year()*12 + int(start.Month()) - 1
	to := end.Year()*12 + int(end.Month()) - 1
	return s.queryBills(ctx, op,
		`SELECT id, kind, amount, month, year FROM utility_bills
		 WHERE year * 12 + month - 1 BETWEEN $1 AND $2 ORDER BY id`, from, to)
}

// RemoveUtilityBill удаляет коммунальный счёт.
func (s *Storage) RemoveUtilityBill(ctx context.Context, id int64) error {
	const op = "storage.RemoveUtilityBill"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM utility_bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}

func (s *Storage) queryBills(ctx context.Context, op, query string, args ...any) ([]models.UtilityBill, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.UtilityBill
	for rows.Next() {
		var b models.UtilityBill
		if err := rows.Scan(&b.ID, &b.Kind, &b.Amount, &b.Month, &b.Year); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
