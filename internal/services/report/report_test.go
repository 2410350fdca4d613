package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/revenue"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
	"github.com/magabrotheeeer/gym-dashboard/internal/services/mocks"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}
func (m *RepoMock) ListSalaryPaymentsBetween(ctx context.Context, start, end time.Time) ([]models.SalaryPayment, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalaryPayment), args.Error(1)
}
func (m *RepoMock) ListMiscCostsBetween(ctx context.Context, start, end time.Time) ([]models.MiscCost, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MiscCost), args.Error(1)
}
func (m *RepoMock) ListUtilityBillsBetween(ctx context.Context, start, end time.Time) ([]models.UtilityBill, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UtilityBill), args.Error(1)
}
func (m *RepoMock) ListAllMembers(ctx context.Context) ([]*models.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}
func (m *RepoMock) ListAllPayments(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService(repo *RepoMock, c *mocks.Cache) *Service {
	svc := New(repo, c, newNoopLogger(), 10*time.Minute, 0)
	svc.now = func() time.Time { return time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC) }
	return svc
}

// expectMarch настраивает выборки за март 2025: выручка 1000, зарплата 300.
func expectMarch(r *RepoMock) {
	r.On("ListPaymentsBetween", mock.Anything, date(2025, 3, 1), mock.Anything).Return([]models.Payment{
		{ID: 1, Price: decimal.NewFromInt(1000), Date: date(2025, 3, 10), ModeOfPayment: "cash"},
	}, nil).Once()
	r.On("ListSalaryPaymentsBetween", mock.Anything, date(2025, 3, 1), mock.Anything).Return([]models.SalaryPayment{
		{ID: 1, AmountPaid: decimal.NewFromInt(300), PaidOn: date(2025, 3, 5)},
	}, nil).Once()
	r.On("ListMiscCostsBetween", mock.Anything, date(2025, 3, 1), mock.Anything).Return([]models.MiscCost{}, nil).Once()
	r.On("ListUtilityBillsBetween", mock.Anything, date(2025, 3, 1), mock.Anything).Return([]models.UtilityBill{}, nil).Once()
}

func TestService_MonthlyRevenue(t *testing.T) {
	t.Run("cache miss aggregates and caches", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(mocks.Cache)
		expectMarch(repo)
		cache.On("Get", "report:2025-03", mock.Anything).Return(false, nil).Once()
		cache.On("Set", "report:2025-03", mock.AnythingOfType("revenue.Summary"), 10*time.Minute).Return(nil).Once()

		got, err := newService(repo, cache).MonthlyRevenue(context.Background(), 2025, time.March)
		require.NoError(t, err)
		assert.True(t, got.MembershipRevenue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, got.CoachSalaryCost.Equal(decimal.NewFromInt(300)))
		assert.True(t, got.NetRevenue.Equal(decimal.NewFromInt(700)))
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(mocks.Cache)
		cache.On("Get", "report:2025-02", mock.Anything).Return(true, nil).Run(func(args mock.Arguments) {
			args.Get(1).(*revenue.Summary).NetRevenue = decimal.NewFromInt(42)
		}).Once()

		got, err := newService(repo, cache).MonthlyRevenue(context.Background(), 2025, time.February)
		require.NoError(t, err)
		assert.True(t, got.NetRevenue.Equal(decimal.NewFromInt(42)))
		repo.AssertNotCalled(t, "ListPaymentsBetween", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("zero period means current month", func(t *testing.T) {
		repo := new(RepoMock)
		expectMarch(repo)

		got, err := newService(repo, mocks.NewNoopCache()).MonthlyRevenue(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 1), got.Window.Start)
	})

	t.Run("missing half of period is taken from today", func(t *testing.T) {
		tests := []struct {
			name  string
			year  int
			month time.Month
			key   string
		}{
			{name: "year only", year: 2024, key: "report:2024-03"},
			{name: "month only", month: time.January, key: "report:2025-01"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cache := new(mocks.Cache)
				cache.On("Get", tt.key, mock.Anything).Return(true, nil).Once()

				_, err := newService(new(RepoMock), cache).MonthlyRevenue(context.Background(), tt.year, tt.month)
				require.NoError(t, err)
				cache.AssertExpectations(t)
			})
		}
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := newService(new(RepoMock), new(mocks.Cache)).MonthlyRevenue(context.Background(), 2025, 13)
		assert.ErrorIs(t, err, services.ErrInvalidPeriod)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("ListPaymentsBetween", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := newService(repo, mocks.NewNoopCache()).MonthlyRevenue(context.Background(), 2025, time.March)
		assert.ErrorContains(t, err, "report.MonthlyRevenue: db error")
	})
}

func TestService_Dashboard(t *testing.T) {
	active := &models.Member{ID: uuid.New(), Plan: "Yearly", JoinDate: date(2025, 1, 1)}
	expiring := &models.Member{ID: uuid.New(), Plan: "Monthly", JoinDate: date(2025, 2, 25)}
	expired := &models.Member{ID: uuid.New(), Plan: "weird", JoinDate: date(2025, 1, 1)}

	repo := new(RepoMock)
	repo.On("ListAllMembers", mock.Anything).Return([]*models.Member{active, expiring, expired}, nil).Once()
	repo.On("ListAllPayments", mock.Anything).Return([]models.Payment{}, nil).Once()
	expectMarch(repo)

	got, err := newService(repo, mocks.NewNoopCache()).Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, date(2025, 3, 20), got.AsOf)
	assert.Equal(t, 3, got.TotalMembers)
	assert.Equal(t, 1, got.Active)
	assert.Equal(t, 1, got.Expiring)
	assert.Equal(t, 1, got.Expired)
	assert.Equal(t, 1, got.UnparsedPlan)
	require.Len(t, got.ExpiringSoon, 1)
	assert.Equal(t, expiring.ID, got.ExpiringSoon[0].Member.ID)
	assert.True(t, got.Month.NetRevenue.Equal(decimal.NewFromInt(700)))
	repo.AssertExpectations(t)
}
