// Package inventory реализует HTTP-обработчики учёта инвентаря зала.
package inventory

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

// Service описывает бизнес-логику инвентаря.
type Service interface {
	Create(ctx context.Context, req models.DummyInventoryItem) (int64, error)
	List(ctx context.Context) ([]*models.InventoryItem, error)
	Update(ctx context.Context, id int64, req models.DummyInventoryItem) error
	Remove(ctx context.Context, id int64) error
}

// Handler обрабатывает запросы /inventory.
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
// @Summary Добавить позицию инвентаря
// @Tags Inventory
// @Accept  json
// @Produce  json
// @Param request body models.DummyInventoryItem true "Позиция"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /inventory [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.inventory.Create")

	var req models.DummyInventoryItem
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not create inventory item")
		return
	}

	log.Info("inventory item created", slog.Int64("id", id))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}

// List godoc
// @Summary Инвентарь
// @Tags Inventory
// @Produce  json
// @Success 200 {object} response.Response{data=[]models.InventoryItem}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /inventory [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.inventory.List")

	items, err := h.service.List(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not list inventory")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(items))
}

// Update godoc
// @Summary Изменить позицию инвентаря
// @Tags Inventory
// @Accept  json
// @Produce  json
// @Param id path int true "ID позиции"
// @Param request body models.DummyInventoryItem true "Новые данные"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Позиция не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /inventory/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.inventory.Update")

	id, ok := request.IDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.DummyInventoryItem
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	if err := h.service.Update(r.Context(), id, req); err != nil {
		request.Fail(w, r, log, err, "could not update inventory item")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated": id,
	}))
}

// Remove godoc
// @Summary Удалить позицию инвентаря
// @Tags Inventory
// @Produce  json
// @Param id path int true "ID позиции"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Позиция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /inventory/{id} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.inventory.Remove")

	id, ok := request.IDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.Remove(r.Context(), id); err != nil {
		request.Fail(w, r, log, err, "could not remove inventory item")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}
