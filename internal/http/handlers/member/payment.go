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

// AddPayment godoc
// @Summary Продлить абонемент
// @Description Записывает платёж участника. Новый абонемент начинается с даты платежа.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param id path string true "ID участника (uuid)"
// @Param request body models.DummyPayment true "Платёж"
// @Success 201 {object} response.Response "ID платежа"
// @Failure 400 {object} response.ErrorResponse "Некорректный запрос"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{id}/payments [post]
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.AddPayment"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.DummyPayment
	if !request.DecodeJSON(w, r, log, h.validate, &req) {
		return
	}

	paymentID, err := h.service.AddPayment(r.Context(), id, req)
	if err != nil {
		request.Fail(w, r, log, err, "could not add payment")
		return
	}

	log.Info("payment added", slog.String("member_id", id.String()), slog.Int64("payment_id", paymentID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"payment_id": paymentID,
	}))
}

// Payments godoc
// @Summary История платежей участника
// @Tags Members
// @Produce  json
// @Param id path string true "ID участника (uuid)"
// @Success 200 {object} response.Response{data=[]models.Payment}
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /members/{id}/payments [get]
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.Payments"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, ok := request.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}

	payments, err := h.service.Payments(r.Context(), id)
	if err != nil {
		request.Fail(w, r, log, err, "could not list payments")
		return
	}

	render.JSON(w, r, response.StatusOKWithData(payments))
}
