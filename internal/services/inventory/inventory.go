// Package inventory ведёт учёт инвентаря зала.
package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

// Repository определяет методы хранилища для инвентаря.
type Repository interface {
	CreateInventoryItem(ctx context.Context, item models.InventoryItem) (int64, error)
	ListInventory(ctx context.Context) ([]*models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error
	RemoveInventoryItem(ctx context.Context, id int64) error
}

// Service бизнес-логика инвентаря.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис инвентаря.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func toItem(req models.DummyInventoryItem) (models.InventoryItem, error) {
	purchased, err := services.ParseDate("purchased_on", req.PurchasedOn)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if err := services.CheckAmount("unit_price", req.UnitPrice); err != nil {
		return models.InventoryItem{}, err
	}
	condition := req.Condition
	if condition == "" {
		condition = "new"
	}
	return models.InventoryItem{
		Name:        req.Name,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		PurchasedOn: purchased,
		Condition:   condition,
	}, nil
}

// Create добавляет единицу инвентаря.
func (s *Service) Create(ctx context.Context, req models.DummyInventoryItem) (int64, error) {
	const op = "inventory.Create"
	item, err := toItem(req)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreateInventoryItem(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created inventory item", slog.Int64("id", id), slog.String("name", item.Name))
	return id, nil
}

// List возвращает весь инвентарь.
func (s *Service) List(ctx context.Context) ([]*models.InventoryItem, error) {
	const op = "inventory.List"
	items, err := s.repo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update заменяет данные единицы инвентаря.
func (s *Service) Update(ctx context.Context, id int64, req models.DummyInventoryItem) error {
	const op = "inventory.Update"
	item, err := toItem(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	item.ID = id
	if err := s.repo.UpdateInventoryItem(ctx, item); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated inventory item", slog.Int64("id", id))
	return nil
}

// Remove удаляет единицу инвентаря.
func (s *Service) Remove(ctx context.Context, id int64) error {
	const op = "inventory.Remove"
	if err := s.repo.RemoveInventoryItem(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed inventory item", slog.Int64("id", id))
	return nil
}
