// Package plan реализует HTTP-обработчики каталога тарифов и предварительного расчёта срока абонемента.
package plan

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

// Service описывает бизнес-логику каталога тарифов.
type Service interface {
	Create(ctx context.Context, req models.DummyPlan) (int64, error)
	List(ctx context.Context) ([]models.PlanView, error)
	Remove(ctx context.Context, id int64) error
	Preview(ctx context.Context, req models.DummyPlanPreview) (*models.PlanPreview, error)
}

// Handler обрабатывает запросы /plans.
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

// Create godoc
// @Summary Добавить тариф
// @Description Descriptor описывает срок ("Monthly", "3 months", "Custom(10 days)"). Пустой descriptor берётся из имени.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body models.DummyPlan true "Тариф"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Тариф с таким именем уже есть"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.plan.Create")

	var req models.DummyPlan
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not create plan")
		return
	}

	log.Info("plan created", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}

// List godoc
// @Summary Каталог тарифов
// @Tags Plans
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.PlanView}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.plan.List")

	plans, err := h.service.List(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not list plans")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(plans))
}

// Remove godoc
// @Summary Удалить тариф
// @Tags Plans
// @Produce  json
// @Param id path int true "ID тарифа"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Тариф не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.plan.Remove")

	id, ok := request.IDParam(w, r, log, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		request.Fail(w, r, log, err, "could not remove plan")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}

// Preview godoc
// @Summary Рассчитать срок абонемента
// @Description Разбирает тариф (имя из каталога или описание срока) и считает дату окончания от start_date.
// @Tags Plans
// @Accept  json
// @Produce  json
// @Param request body models.DummyPlanPreview true "Тариф и дата начала"
// @Success 200 {object} response.Response{data=models.PlanPreview}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /plans/preview [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.plan.Preview")

	var req models.DummyPlanPreview
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	preview, err := h.service.Preview(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not preview plan")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(preview))
}
