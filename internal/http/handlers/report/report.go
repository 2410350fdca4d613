// Package report реализует HTTP-обработчики отчёта о выручке и сводки для главной страницы.
package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/gym-dashboard/internal/http/request"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/response"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/revenue"
	"github.com/magabrotheeeer/gym-dashboard/internal/services/report"
)

// Service описывает бизнес-логику отчётов.
type Service interface {
	MonthlyRevenue(ctx context.Context, year int, m time.Month) (*revenue.Summary, error)
	Dashboard(ctx context.Context) (*report.Dashboard, error)
}

// Handler обрабатывает запросы /reports и /dashboard.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// Revenue godoc
// @Summary Выручка за месяц
// @Description Доходы от абонементов, расходы на зарплаты, прочие траты и коммунальные счета за календарный месяц. Не указанные год или месяц берутся из текущей даты.
// @Tags Reports
// @Produce  json
// @Param year query int false "Год"
// @Param month query int false "Месяц 1..12"
// @Success 200 {object} response.Response{data=revenue.Summary}
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Failure 422 {object} response.ErrorResponse "Недопустимый период"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /reports/revenue [get]
func (h *Handler) Revenue(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.Revenue"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	year, ok := request.QueryInt(w, r, log, "year", 0)
	if !ok {
		return
	}
	m, ok := request.QueryInt(w, r, log, "month", 0)
	if !ok {
		return
	}

	summary, err := h.service.MonthlyRevenue(r.Context(), year, time.Month(m))
	if err != nil {
		request.Fail(w, r, log, err, "could not build revenue report")
		return
	}

	log.Info("revenue report built", slog.String("net", summary.NetRevenue.String()))
	render.JSON(w, r, response.StatusOKWithData(summary))
}

// Dashboard godoc
// @Summary Сводка панели
// @Description Количество участников по статусам, ближайшие окончания абонементов и выручка текущего месяца.
// @Tags Reports
// @Produce  json
// @Success 200 {object} response.Response{data=report.Dashboard}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.Dashboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	d, err := h.service.Dashboard(r.Context())
	if err != nil {
		request.Fail(w, r, log, err, "could not build dashboard")
		return
	}
	render.JSON(w, r, response.StatusOKWithData(d))
}
