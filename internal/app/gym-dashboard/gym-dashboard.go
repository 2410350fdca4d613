// Package gymdashboard собирает HTTP-приложение панели администратора зала:
// хранилище, миграции, кеш, сервисы и маршруты.
package gymdashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/gym-dashboard/internal/cache"
	"github.com/magabrotheeeer/gym-dashboard/internal/config"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/migrations"
	coachservice "github.com/magabrotheeeer/gym-dashboard/internal/services/coach"
	expenseservice "github.com/magabrotheeeer/gym-dashboard/internal/services/expense"
	inventoryservice "github.com/magabrotheeeer/gym-dashboard/internal/services/inventory"
	memberservice "github.com/magabrotheeeer/gym-dashboard/internal/services/member"
	planservice "github.com/magabrotheeeer/gym-dashboard/internal/services/plan"
	reportservice "github.com/magabrotheeeer/gym-dashboard/internal/services/report"
	"github.com/magabrotheeeer/gym-dashboard/internal/storage/repository"
)

// App HTTP-приложение панели.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New подключается к PostgreSQL и Redis, применяет миграции и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "gymdashboard.New"

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	windowDays := cfg.ExpiringWindowDays
	svc := Services{
		Members:   memberservice.New(db, cacheRedis, logger, windowDays),
		Plans:     planservice.New(db, logger),
		Coaches:   coachservice.New(db, cacheRedis, logger),
		Expenses:  expenseservice.New(db, cacheRedis, logger),
		Inventory: inventoryservice.New(db, logger),
		Reports:   reportservice.New(db, cacheRedis, logger, cfg.CacheTTL, windowDays),
		DB:        db.DB,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.HTTPServer, svc)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeResources()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeResources()
		return err
	}
}

func (a *App) closeResources() {
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
