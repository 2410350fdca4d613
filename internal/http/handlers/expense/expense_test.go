package expense

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateMisc(ctx context.Context, req models.DummyMiscCost) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) ListMisc(ctx context.Context) ([]models.MiscCost, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.MiscCost), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) RemoveMisc(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) CreateBill(ctx context.Context, req models.DummyUtilityBill) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) ListBills(ctx context.Context) ([]models.UtilityBill, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.UtilityBill), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) RemoveBill(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newRouter(svc Service) http.Handler {
	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	r := chi.NewRouter()
	r.Route("/expenses", func(r chi.Router) {
		r.Post("/misc", h.CreateMisc)
		r.Get("/misc", h.ListMisc)
		r.Delete("/misc/{id}", h.RemoveMisc)
		r.Post("/bills", h.CreateBill)
		r.Get("/bills", h.ListBills)
		r.Delete("/bills/{id}", h.RemoveBill)
	})
	return r
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "create misc",
			method: http.MethodPost,
			url:    "/expenses/misc",
			body:   `{"title":"towels","amount":"300","date":"10-03-2025"}`,
			setupMock: func(m *MockService) {
				m.On("CreateMisc", mock.Anything, mock.MatchedBy(func(req models.DummyMiscCost) bool {
					return req.Title == "towels" && req.Amount.Equal(decimal.NewFromInt(300))
				})).Return(int64(5), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":5`,
		},
		{
			name:   "list misc",
			method: http.MethodGet,
			url:    "/expenses/misc",
			setupMock: func(m *MockService) {
				m.On("ListMisc", mock.Anything).Return([]models.MiscCost{{ID: 5, Title: "towels"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"towels"`,
		},
		{
			name:   "remove misc missing",
			method: http.MethodDelete,
			url:    "/expenses/misc/5",
			setupMock: func(m *MockService) {
				m.On("RemoveMisc", mock.Anything, int64(5)).Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "not found",
		},
		{
			name:           "bill with wrong month",
			method:         http.MethodPost,
			url:            "/expenses/bills",
			body:           `{"kind":"water","amount":"100","month":13,"year":2025}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Month must be at most 12",
		},
		{
			name:           "bill with unknown kind",
			method:         http.MethodPost,
			url:            "/expenses/bills",
			body:           `{"kind":"gas","amount":"100","month":3,"year":2025}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Kind must be one of",
		},
		{
			name:   "create bill",
			method: http.MethodPost,
			url:    "/expenses/bills",
			body:   `{"kind":"electricity","amount":"1200","month":3,"year":2025}`,
			setupMock: func(m *MockService) {
				m.On("CreateBill", mock.Anything, mock.Anything).Return(int64(2), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":2`,
		},
		{
			name:   "list bills error",
			method: http.MethodGet,
			url:    "/expenses/bills",
			setupMock: func(m *MockService) {
				m.On("ListBills", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "could not list bills",
		},
		{
			name:           "remove bill bad id",
			method:         http.MethodDelete,
			url:            "/expenses/bills/x",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "invalid id",
		},
		{
			name:   "remove bill",
			method: http.MethodDelete,
			url:    "/expenses/bills/2",
			setupMock: func(m *MockService) {
				m.On("RemoveBill", mock.Anything, int64(2)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"removed":2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			newRouter(mockService).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
