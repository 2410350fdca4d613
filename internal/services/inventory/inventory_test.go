package inventory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateInventoryItem(ctx context.Context, item models.InventoryItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ListInventory(ctx context.Context) ([]*models.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.InventoryItem), args.Error(1)
}
func (m *RepoMock) UpdateInventoryItem(ctx context.Context, item models.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *RepoMock) RemoveInventoryItem(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           models.DummyInventoryItem
		wantCondition string
		wantErr       error
	}{
		{
			name:          "default condition",
			req:           models.DummyInventoryItem{Name: "mat", Quantity: 10, UnitPrice: decimal.NewFromInt(500), PurchasedOn: "01-09-2024"},
			wantCondition: "new",
		},
		{
			name:          "explicit condition",
			req:           models.DummyInventoryItem{Name: "bench", Quantity: 1, UnitPrice: decimal.NewFromInt(9000), PurchasedOn: "01-09-2024", Condition: "worn"},
			wantCondition: "worn",
		},
		{
			name:    "negative unit price",
			req:     models.DummyInventoryItem{Name: "bench", UnitPrice: decimal.NewFromInt(-1), PurchasedOn: "01-09-2024"},
			wantErr: services.ErrNegativeAmount,
		},
		{
			name:    "invalid date",
			req:     models.DummyInventoryItem{Name: "bench", PurchasedOn: "yesterday"},
			wantErr: services.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			if tt.wantErr == nil {
				repo.On("CreateInventoryItem", mock.Anything, mock.MatchedBy(func(it models.InventoryItem) bool {
					return it.Condition == tt.wantCondition && it.Name == tt.req.Name
				})).Return(int64(11), nil).Once()
			}

			id, err := New(repo, newNoopLogger()).Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(11), id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Update(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UpdateInventoryItem", mock.Anything, mock.MatchedBy(func(it models.InventoryItem) bool {
		return it.ID == 4 && it.Condition == "broken"
	})).Return(repository.ErrNotFound).Once()

	err := New(repo, newNoopLogger()).Update(context.Background(), 4, models.DummyInventoryItem{
		Name: "treadmill", Quantity: 1, PurchasedOn: "01-01-2023", Condition: "broken",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestService_ListAndRemove(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListInventory", mock.Anything).Return([]*models.InventoryItem{{ID: 1}, {ID: 2}}, nil).Once()
	repo.On("RemoveInventoryItem", mock.Anything, int64(2)).Return(nil).Once()

	svc := New(repo, newNoopLogger())
	items, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
	require.NoError(t, svc.Remove(context.Background(), 2))
	repo.AssertExpectations(t)
}
