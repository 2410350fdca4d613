package gymdashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// Регистрация описания API для /docs.
	_ "github.com/magabrotheeeer/gym-dashboard/docs"
	"github.com/magabrotheeeer/gym-dashboard/internal/config"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/coach"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/expense"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/health"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/inventory"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/member"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/plan"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/handlers/report"
	"github.com/magabrotheeeer/gym-dashboard/internal/http/middlewarectx"
)

// Services набор зависимостей, которые нужны маршрутам.
type Services struct {
	Members   member.Service
	Plans     plan.Service
	Coaches   coach.Service
	Expenses  expense.Service
	Inventory inventory.Service
	Reports   report.Service
	DB        health.Pinger
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg config.HTTPServer, svc Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(cfg.RateLimit), cfg.RateBurst))

		members := member.New(logger, svc.Members)
		r.Route("/members", func(r chi.Router) {
			r.Post("/", members.Create)
			r.Get("/", members.List)
			r.Get("/expiring", members.Expiring)
			r.Get("/{id}", members.Read)
			r.Put("/{id}", members.Update)
			r.Delete("/{id}", members.Remove)
			r.Post("/{id}/payments", members.AddPayment)
			r.Get("/{id}/payments", members.Payments)
		})

		plans := plan.New(logger, svc.Plans)
		r.Route("/plans", func(r chi.Router) {
			r.Post("/", plans.Create)
			r.Get("/", plans.List)
			r.Post("/preview", plans.Preview)
			r.Delete("/{id}", plans.Remove)
		})

		coaches := coach.New(logger, svc.Coaches)
		r.Route("/coaches", func(r chi.Router) {
			r.Post("/", coaches.Create)
			r.Get("/", coaches.List)
			r.Delete("/{id}", coaches.Remove)
			r.Post("/{id}/salaries", coaches.PaySalary)
			r.Get("/{id}/salaries", coaches.Salaries)
		})

		expenses := expense.New(logger, svc.Expenses)
		r.Route("/expenses", func(r chi.Router) {
			r.Post("/misc", expenses.CreateMisc)
			r.Get("/misc", expenses.ListMisc)
			r.Delete("/misc/{id}", expenses.RemoveMisc)
			r.Post("/bills", expenses.CreateBill)
			r.Get("/bills", expenses.ListBills)
			r.Delete("/bills/{id}", expenses.RemoveBill)
		})

		items := inventory.New(logger, svc.Inventory)
		r.Route("/inventory", func(r chi.Router) {
			r.Post("/", items.Create)
			r.Get("/", items.List)
			r.Put("/{id}", items.Update)
			r.Delete("/{id}", items.Remove)
		})

		reports := report.New(logger, svc.Reports)
		r.Get("/reports/revenue", reports.Revenue)
		r.Get("/dashboard", reports.Dashboard)
	})

	r.Get("/health", health.New(logger, svc.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
