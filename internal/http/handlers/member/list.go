package member

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
)

// List godoc
// @Summary Список участников
// @Description Возвращает страницу участников с вычисленными статусами. Фильтр status: all, active, expiring, expired.
// @Tags Members
// @Produce  json
// @Param status query string false "Фильтр по статусу"
// @Param limit query int false "Размер страницы" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 422 {object} response.ErrorResponse "Неизвестный статус"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, ok := request.QueryInt(w, r, log, "limit", defaultLimit)
	if !ok {
		return
	}
	offset, ok := request.QueryInt(w, r, log, "offset", 0)
	if !ok {
		return
	}
	if limit == 0 || limit > maxLimit {
		limit = defaultLimit
	}
	status := r.URL.Query().Get("status")

	views, total, err := h.service.List(r.Context(), status, limit, offset)
	if err != nil {
		request.Fail(w, r, log, err, "could not list members")
		return
	}

	log.Info("members listed", slog.Int("count", len(views)), slog.Int("total", total))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"members": views,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	}))
}

// Expiring godoc
// @Summary Участники с истекающим абонементом
// @Description Абонементы, которые закончатся в ближайшие days дней, по возрастанию даты окончания.
// @Tags Members
// @Produce  json
// @Param days query int false "Окно в днях" default(7)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/expiring [get]
func (h *Handler) Expiring(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.Expiring"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	days, ok := request.QueryInt(w, r, log, "days", 0)
	if !ok {
		return
	}

	views, err := h.service.Expiring(r.Context(), days)
	if err != nil {
		request.Fail(w, r, log, err, "could not list expiring members")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"members": views,
		"count":   len(views),
	}))
}
