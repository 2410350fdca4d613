// Package coach реализует HTTP-обработчики учёта тренеров и выплат зарплаты.
package coach

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// Service описывает бизнес-логику тренеров.
type Service interface {
	Create(ctx context.Context, req models.DummyCoach) (uuid.UUID, error)
	List(ctx context.Context) ([]*models.Coach, error)
	Remove(ctx context.Context, id uuid.UUID) error
	PaySalary(ctx context.Context, coachID uuid.UUID, req models.DummySalary) (int64, error)
	Salaries(ctx context.Context, coachID uuid.UUID) ([]models.SalaryPayment, error)
}

// Handler обрабатывает запросы /coaches.
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
// @Summary Добавить тренера
// @Tags Coaches
// @Accept  json
// @Produce  json
// @Param request body models.DummyCoach true "Тренер"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coaches [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.coach.Create")

	var req models.DummyCoach
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not create coach")
		return
	}

	log.Info("coach created", slog.String("id", id.String()))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}

// List godoc
// @Summary Список тренеров
// @Tags Coaches
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.Coach}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coaches [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.coach.List")

	coaches, err := h.service.List(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not list coaches")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(coaches))
}

// Remove godoc
// @Summary Удалить тренера
// @Description Удаляет тренера вместе с историей выплат.
// @Tags Coaches
// @Produce  json
// @Param id path string true "ID тренера (uuid)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coaches/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.coach.Remove")

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		request.Fail(w, r, log, err, "could not remove coach")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}

// PaySalary godoc
// @Summary Выплатить зарплату
// @Tags Coaches
// @Accept  json
// @Produce  json
// @Param id path string true "ID тренера (uuid)"
// @Param request body models.DummySalary true "Выплата"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Тренер не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coaches/{id}/salaries [post]
func (h *Handler) PaySalary(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.coach.PaySalary")

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.DummySalary
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	salaryID, err := h.service.PaySalary(r.Context(), id, req)
	if err != nil {
		request.Fail(w, r, log, err, "could not pay salary")
		return
	}

	log.Info("salary paid", slog.String("coach_id", id.String()), slog.Int64("id", salaryID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": salaryID,
	}))
}

// Salaries godoc
// @Summary История выплат тренеру
// @Tags Coaches
// @Produce  json
// @Param id path string true "ID тренера (uuid)"
// @Success 200 {object} response.Response{data=[]models.SalaryPayment}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /coaches/{id}/salaries [get]
func (h *Handler) Salaries(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.coach.Salaries")

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}

	salaries, err := h.service.Salaries(r.Context(), id)
	if err != nil {
		request.Fail(w, r, log, err, "could not list salaries")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(salaries))
}
