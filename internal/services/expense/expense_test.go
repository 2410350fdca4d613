package expense

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
	"github.com/magabrotheeeer/gym-dashboard/internal/services/mocks"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateMiscCost(ctx context.Context, c models.MiscCost) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ReadMiscCost(ctx context.Context, id int64) (*models.MiscCost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MiscCost), args.Error(1)
}
func (m *RepoMock) ListMiscCosts(ctx context.Context) ([]models.MiscCost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MiscCost), args.Error(1)
}
func (m *RepoMock) RemoveMiscCost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) CreateUtilityBill(ctx context.Context, b models.UtilityBill) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ReadUtilityBill(ctx context.Context, id int64) (*models.UtilityBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UtilityBill), args.Error(1)
}
func (m *RepoMock) ListUtilityBills(ctx context.Context) ([]models.UtilityBill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UtilityBill), args.Error(1)
}
func (m *RepoMock) RemoveUtilityBill(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_CreateMisc(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyMiscCost
		setupMocks func(r *RepoMock, c *mocks.Cache)
		wantID     int64
		wantErr    error
	}{
		{
			name: "success",
			req:  models.DummyMiscCost{Title: " cleaning ", Amount: decimal.NewFromInt(200), Date: "03-03-2025"},
			setupMocks: func(r *RepoMock, c *mocks.Cache) {
				r.On("CreateMiscCost", mock.Anything, models.MiscCost{
					Title:  "cleaning",
					Amount: decimal.NewFromInt(200),
					Date:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
				}).Return(int64(1), nil).Once()
				c.On("Invalidate", []string{"report:2025-03"}).Return(nil).Once()
			},
			wantID: 1,
		},
		{
			name:       "negative amount",
			req:        models.DummyMiscCost{Title: "refund", Amount: decimal.NewFromInt(-200), Date: "03-03-2025"},
			setupMocks: func(_ *RepoMock, _ *mocks.Cache) {},
			wantErr:    services.ErrNegativeAmount,
		},
		{
			name:       "invalid date",
			req:        models.DummyMiscCost{Title: "x", Amount: decimal.NewFromInt(1), Date: "32-01-2025"},
			setupMocks: func(_ *RepoMock, _ *mocks.Cache) {},
			wantErr:    services.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			cache := new(mocks.Cache)
			tt.setupMocks(repo, cache)

			id, err := New(repo, cache, newNoopLogger()).CreateMisc(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestService_RemoveMisc(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(mocks.Cache)
		repo.On("ReadMiscCost", mock.Anything, int64(4)).
			Return(&models.MiscCost{ID: 4, Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)}, nil).Once()
		repo.On("RemoveMiscCost", mock.Anything, int64(4)).Return(nil).Once()
		cache.On("Invalidate", []string{"report:2025-02"}).Return(nil).Once()

		require.NoError(t, New(repo, cache, newNoopLogger()).RemoveMisc(context.Background(), 4))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ReadMiscCost", mock.Anything, int64(4)).Return(nil, repository.ErrNotFound).Once()

		err := New(repo, new(mocks.Cache), newNoopLogger()).RemoveMisc(context.Background(), 4)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		repo.AssertNotCalled(t, "RemoveMiscCost", mock.Anything, mock.Anything)
	})
}

func TestService_CreateBill(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(mocks.Cache)
		repo.On("CreateUtilityBill", mock.Anything, mock.MatchedBy(func(b models.UtilityBill) bool {
			return b.Kind == "electricity" && b.Month == 12 && b.Year == 2024
		})).Return(int64(2), nil).Once()
		cache.On("Invalidate", []string{"report:2024-12"}).Return(nil).Once()

		id, err := New(repo, cache, newNoopLogger()).CreateBill(context.Background(), models.DummyUtilityBill{
			Kind: "electricity", Amount: decimal.NewFromInt(400), Month: 12, Year: 2024,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)
		cache.AssertExpectations(t)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, err := New(new(RepoMock), new(mocks.Cache), newNoopLogger()).CreateBill(context.Background(), models.DummyUtilityBill{
			Kind: "water", Amount: decimal.NewFromInt(1), Month: 13, Year: 2024,
		})
		assert.ErrorIs(t, err, services.ErrInvalidPeriod)
	})
}

func TestService_RemoveBill(t *testing.T) {
	repo := new(RepoMock)
	cache := new(mocks.Cache)
	repo.On("ReadUtilityBill", mock.Anything, int64(3)).
		Return(&models.UtilityBill{ID: 3, Month: 3, Year: 2025}, nil).Once()
	repo.On("RemoveUtilityBill", mock.Anything, int64(3)).Return(errors.New("db error")).Once()

	err := New(repo, cache, newNoopLogger()).RemoveBill(context.Background(), 3)
	assert.ErrorContains(t, err, "expense.RemoveBill: db error")
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestService_Lists(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListMiscCosts", mock.Anything).Return([]models.MiscCost{{ID: 1}}, nil).Once()
	repo.On("ListUtilityBills", mock.Anything).Return(nil, errors.New("db error")).Once()

	svc := New(repo, new(mocks.Cache), newNoopLogger())
	misc, err := svc.ListMisc(context.Background())
	require.NoError(t, err)
	assert.Len(t, misc, 1)

	_, err = svc.ListBills(context.Background())
	assert.Error(t, err)
}
