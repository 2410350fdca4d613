package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

const memberColumns = `id, name, phone, email, plan, price, join_date, mode_of_payment, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.Member, error) {
	var m models.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Phone, &m.Email, &m.Plan, &m.Price,
		&m.JoinDate, &m.ModeOfPayment, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMember сохраняет участника и его первый платёж в одной транзакции.
// Возвращает ID платежа.
func (s *Storage) CreateMember(ctx context.Context, member models.Member, first models.Payment) (int64, error) {
	const op = "storage.CreateMember"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO members (id, name, phone, email, plan, price, join_date, mode_of_payment)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		member.ID, member.Name, member.Phone, member.Email, member.Plan, member.Price,
		member.JoinDate, member.ModeOfPayment)
	if err != nil {
		return 0, mapError(op, err)
	}

	var paymentID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (member_id, plan, price, date, mode_of_payment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		member.ID, first.Plan, first.Price, first.Date, first.ModeOfPayment).Scan(&paymentID)
	if err != nil {
		return 0, mapError(op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return paymentID, nil
}

// ReadMember возвращает участника по ID.
func (s *Storage) ReadMember(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	const op = "storage.ReadMember"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)
	m, err := scanMember(row)
	if err != nil {
		return nil, mapError(op, err)
	}
	return m, nil
}

// UpdateMember обновляет контактные данные и базовый тариф участника.
func (s *Storage) UpdateMember(ctx context.Context, member models.Member) error {
	const op = "storage.UpdateMember"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE members
		 SET name = $1, phone = $2, email = $3, plan = $4, price = $5, join_date = $6, mode_of_payment = $7
		 WHERE id = $8`,
		member.Name, member.Phone, member.Email, member.Plan, member.Price, member.JoinDate,
		member.ModeOfPayment, member.ID)
	if err != nil {
		return mapError(op, err)
	}
	return affected(op, result)
}

// RemoveMember удаляет участника вместе с историей платежей.
func (s *Storage) RemoveMember(ctx context.Context, id uuid.UUID) error {
	const op = "storage.RemoveMember"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}

// ListMembers возвращает участников с пагинацией. limit <= 0 снимает ограничение.
func (s *Storage) ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error) {
	const op = "storage.ListMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		sql.NullInt64{Int64: int64(limit), Valid: limit > 0}, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListAllMembers возвращает всех участников. Используется планировщиком и сводкой.
func (s *Storage) ListAllMembers(ctx context.Context) ([]*models.Member, error) {
	const op = "storage.ListAllMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountMembers возвращает число участников.
func (s *Storage) CountMembers(ctx context.Context) (int, error) {
	const op = "storage.CountMembers"
	var n int
	if err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM members`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// AddPayment добавляет платёж участнику и возвращает его ID.
func (s *Storage) AddPayment(ctx context.Context, p models.Payment) (int64, error) {
	const op = "storage.AddPayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO payments (member_id, plan, price, date, mode_of_payment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.MemberID, p.Plan, p.Price, p.Date, p.ModeOfPayment).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ListPayments возвращает историю платежей участника в порядке добавления.
func (s *Storage) ListPayments(ctx context.Context, memberID uuid.UUID) ([]models.Payment, error) {
	const op = "storage.ListPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryPayments(ctx, op,
		`SELECT id, member_id, plan, price, date, mode_of_payment
		 FROM payments WHERE member_id = $1 ORDER BY id`, memberID)
}

// ListPaymentsBetween возвращает платежи всех участников с датой в [start, end].
func (s *Storage) ListPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	const op = "storage.ListPaymentsBetween"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryPayments(ctx, op,
		`SELECT id, member_id, plan, price, date, mode_of_payment
		 FROM payments WHERE date >= $1::date AND date <= $2::date ORDER BY id`, start, end)
}

// ListAllPayments возвращает все платежи, сгруппировать их по участникам должен вызывающий.
func (s *Storage) ListAllPayments(ctx context.Context) ([]models.Payment, error) {
	const op = "storage.ListAllPayments"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	return s.queryPayments(ctx, op,
		`SELECT id, member_id, plan, price, date, mode_of_payment FROM payments ORDER BY id`)
}

func (s *Storage) queryPayments(ctx context.Context, op, query string, args ...any) ([]models.Payment, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Plan, &p.Price, &p.Date, &p.ModeOfPayment); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
