package plan

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

	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePlan(ctx context.Context, plan models.MembershipPlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ListPlans(ctx context.Context) ([]*models.MembershipPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.MembershipPlan), args.Error(1)
}
func (m *RepoMock) RemovePlan(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *RepoMock) ReadPlanByName(ctx context.Context, name string) (*models.MembershipPlan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MembershipPlan), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name           string
		req            models.DummyPlan
		wantDescriptor string
		repoErr        error
		wantErr        error
	}{
		{
			name:           "descriptor given",
			req:            models.DummyPlan{Name: "Gold", Descriptor: "6 months", Price: decimal.NewFromInt(5000)},
			wantDescriptor: "6 months",
		},
		{
			name:           "name used as descriptor",
			req:            models.DummyPlan{Name: "Quarterly", Price: decimal.NewFromInt(2700)},
			wantDescriptor: "Quarterly",
		},
		{
			name:           "unrecognised descriptor is kept",
			req:            models.DummyPlan{Name: "Promo", Descriptor: "2 weeks", Price: decimal.Zero},
			wantDescriptor: "2 weeks",
		},
		{
			name:    "negative price",
			req:     models.DummyPlan{Name: "Broken", Price: decimal.NewFromInt(-1)},
			wantErr: services.ErrNegativeAmount,
		},
		{
			name:           "duplicate name",
			req:            models.DummyPlan{Name: "Monthly", Price: decimal.NewFromInt(1000)},
			wantDescriptor: "Monthly",
			repoErr:        repository.ErrAlreadyExists,
			wantErr:        repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			if tt.wantDescriptor != "" {
				repo.On("CreatePlan", mock.Anything, mock.MatchedBy(func(p models.MembershipPlan) bool {
					return p.Descriptor == tt.wantDescriptor
				})).Return(int64(3), tt.repoErr).Once()
			}

			id, err := New(repo, newNoopLogger()).Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(3), id)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_List(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListPlans", mock.Anything).Return([]*models.MembershipPlan{
		{ID: 1, Name: "Quarterly", Descriptor: "Quarterly"},
		{ID: 2, Name: "Promo", Descriptor: "2 weeks"},
	}, nil).Once()

	views, err := New(repo, newNoopLogger()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, planterm.PlanTerm{Quantity: 3, Unit: planterm.Month}, views[0].Term)
	assert.True(t, views[0].ParsedPlan)
	assert.Equal(t, planterm.Default, views[1].Term)
	assert.False(t, views[1].ParsedPlan)
}

func TestService_Remove(t *testing.T) {
	repo := new(RepoMock)
	repo.On("RemovePlan", mock.Anything, int64(9)).Return(repository.ErrNotFound).Once()

	err := New(repo, newNoopLogger()).Remove(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestService_Preview(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyPlanPreview
		setup      func(r *RepoMock)
		wantTerm   planterm.PlanTerm
		wantParsed bool
		wantExpiry time.Time
		wantErr    error
	}{
		{
			name: "raw descriptor",
			req:  models.DummyPlanPreview{Descriptor: "Custom (10 days)", StartDate: "25-12-2024"},
			setup: func(r *RepoMock) {
				r.On("ReadPlanByName", mock.Anything, "Custom (10 days)").Return(nil, repository.ErrNotFound).Once()
			},
			wantTerm:   planterm.PlanTerm{Quantity: 10, Unit: planterm.Day},
			wantParsed: true,
			wantExpiry: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "catalogue name resolves to stored descriptor",
			req:  models.DummyPlanPreview{Descriptor: "Gold", StartDate: "01-03-2025"},
			setup: func(r *RepoMock) {
				r.On("ReadPlanByName", mock.Anything, "Gold").
					Return(&models.MembershipPlan{Name: "Gold", Descriptor: "6 months"}, nil).Once()
			},
			wantTerm:   planterm.PlanTerm{Quantity: 6, Unit: planterm.Month},
			wantParsed: true,
			wantExpiry: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "fallback flagged",
			req:  models.DummyPlanPreview{Descriptor: "forever", StartDate: "31-01-2025"},
			setup: func(r *RepoMock) {
				r.On("ReadPlanByName", mock.Anything, "forever").Return(nil, repository.ErrNotFound).Once()
			},
			wantTerm:   planterm.Default,
			wantParsed: false,
			wantExpiry: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "invalid date",
			req:     models.DummyPlanPreview{Descriptor: "Monthly", StartDate: "01/03/2025"},
			setup:   func(_ *RepoMock) {},
			wantErr: services.ErrInvalidDate,
		},
		{
			name: "repo error",
			req:  models.DummyPlanPreview{Descriptor: "Monthly", StartDate: "01-03-2025"},
			setup: func(r *RepoMock) {
				r.On("ReadPlanByName", mock.Anything, "Monthly").Return(nil, errors.New("db error")).Once()
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)

			got, err := New(repo, newNoopLogger()).Preview(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTerm, got.Term)
			assert.Equal(t, tt.wantParsed, got.ParsedPlan)
			assert.Equal(t, tt.wantExpiry, got.Expiry)
			repo.AssertExpectations(t)
		})
	}
}
