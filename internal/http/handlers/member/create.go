package member

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

// Create godoc
// @Summary Зарегистрировать участника
// @Description Создает участника и записывает первый платёж по выбранному тарифу. Дата в формате 02-01-2006.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param request body models.DummyMember true "Анкета участника"
// @Success 201 {object} response.Response "ID созданного участника"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMember
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	id, err := h.service.Register(r.Context(), req)
	if err != nil {
		request.Fail(w, r, log, err, "could not register member")
		return
	}

	log.Info("member registered", slog.String("id", id.String()))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
