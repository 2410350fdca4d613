// Package expense реализует HTTP-обработчики расходов зала: прочих трат и коммунальных счетов.
package expense

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// Service описывает бизнес-логику расходов.
type Service interface {
	CreateMisc(ctx context.Context, req models.DummyMiscCost) (int64, error)
	ListMisc(ctx context.Context) ([]models.MiscCost, error)
	RemoveMisc(ctx context.Context, id int64) error
	CreateBill(ctx context.Context, req models.DummyUtilityBill) (int64, error)
	ListBills(ctx context.Context) ([]models.UtilityBill, error)
	RemoveBill(ctx context.Context, id int64) error
}

// Handler обрабатывает запросы /expenses.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func (h *Handler) created(w http.ResponseWriter, r *http.Request, id int64) {
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}

// CreateMisc godoc
// @Summary Добавить прочий расход
// @Tags Expenses
// @Accept  json
// @Produce  json
// @Param request body models.DummyMiscCost true "Расход"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/misc [post]
func (h *Handler) CreateMisc(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.CreateMisc")

	var req models.DummyMiscCost
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.CreateMisc(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not create misc cost")
		return
	}
	log.Info("misc cost created", slog.Int64("id", id))
	h.created(w, r, id)
}

// ListMisc godoc
// @Summary Прочие расходы
// @Tags Expenses
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.MiscCost}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/misc [get]
func (h *Handler) ListMisc(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.ListMisc")

	costs, err := h.service.ListMisc(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not list misc costs")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(costs))
}

// RemoveMisc godoc
// @Summary Удалить прочий расход
// @Tags Expenses
// @Produce  json
// @Param id path int true "ID расхода"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Расход не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/misc/{id} [delete]
func (h *Handler) RemoveMisc(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.RemoveMisc")

	id, ok := request.IDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.RemoveMisc(r.Context(), id); err != nil {
		request.Fail(w, r, log, err, "could not remove misc cost")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}

// CreateBill godoc
// @Summary Добавить коммунальный счёт
// @Tags Expenses
// @Accept  json
// @Produce  json
// @Param request body models.DummyUtilityBill true "Счёт"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/bills [post]
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.CreateBill")

	var req models.DummyUtilityBill
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.CreateBill(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not create bill")
		return
	}
	log.Info("bill created", slog.Int64("id", id))
	h.created(w, r, id)
}

// ListBills godoc
// @Summary Коммунальные счета
// @Tags Expenses
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.UtilityBill}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/bills [get]
func (h *Handler) ListBills(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.ListBills")

	bills, err := h.service.ListBills(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not list bills")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(bills))
}

// RemoveBill godoc
// @Summary Удалить коммунальный счёт
// @Tags Expenses
// @Produce  json
// @Param id path int true "ID счёта"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Счёт не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /expenses/bills/{id} [delete]
func (h *Handler) RemoveBill(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.expense.RemoveBill")

	id, ok := request.IDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.RemoveBill(r.Context(), id); err != nil {
		request.Fail(w, r, log, err, "could not remove bill")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}
