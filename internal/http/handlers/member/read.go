package member

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
)

// Read godoc
// @Summary Карточка участника
// @Description Возвращает участника с вычисленным абонементом и статусом на сегодня.
// @Tags Members
// @Produce  json
// @Param id path string true "ID участника (uuid)"
// @Success 200 {object} response.Response{data=models.MemberView}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{id} [get]
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.Read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}

	view, err := h.service.Read(r.Context(), id)
	if err != nil {
		request.Fail(w, r, log, err, "could not read member")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(view))
}
