package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// CreateInventoryItem сохраняет единицу инвентаря.
func (s *Storage) CreateInventoryItem(ctx context.Context, item models.InventoryItem) (int64, error) {
	const op = "storage.CreateInventoryItem"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int64
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO inventory_items (name, quantity, unit_price, purchased_on, condition)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		item.Name, item.Quantity, item.UnitPrice, item.PurchasedOn, item.Condition).Scan(&id)
	if err != nil {
		return 0, mapError(op, err)
	}
	return id, nil
}

// ListInventory возвращает весь инвентарь.
func (s *Storage) ListInventory(ctx context.Context) ([]*models.InventoryItem, error) {
	const op = "storage.ListInventory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, name, quantity, unit_price, purchased_on, condition FROM inventory_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.InventoryItem
	for rows.Next() {
		var it models.InventoryItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Quantity, &it.UnitPrice, &it.PurchasedOn, &it.Condition); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateInventoryItem обновляет единицу инвентаря по ID.
func (s *Storage) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	const op = "storage.UpdateInventoryItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE inventory_items
		 SET name = $1, quantity = $2, unit_price = $3, purchased_on = $4, condition = $5
		 WHERE id = $6`,
		item.Name, item.Quantity, item.UnitPrice, item.PurchasedOn, item.Condition, item.ID)
	if err != nil {
		return mapError(op, err)
	}
	return affected(op, result)
}

// RemoveInventoryItem удаляет единицу инвентаря.
func (s *Storage) RemoveInventoryItem(ctx context.Context, id int64) error {
	const op = "storage.RemoveInventoryItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affected(op, result)
}
