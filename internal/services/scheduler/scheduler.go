// Package scheduler периодически ищет абонементы, которые скоро закончатся или уже закончились,
// и публикует уведомления для сервиса рассылки.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-dashboard/internal/config"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

// Repository выборки, по которым вычисляются абонементы.
type Repository interface {
	ListAllMembers(ctx context.Context) ([]*models.Member, error)
	ListAllPayments(ctx context.Context) ([]models.Payment, error)
}

// Publisher публикует сообщение с ключом маршрутизации.
type Publisher interface {
	Publish(routingKey string, message any) error
}

// Service планировщик уведомлений.
type Service struct {
	repo       Repository
	publisher  Publisher
	log        *slog.Logger
	interval   time.Duration
	windowDays int
	now        func() time.Time

	// sent помнит отправленные уведомления, чтобы не слать одно и то же при каждом запуске.
	sent map[string]time.Time
}

// New создает планировщик.
func New(repo Repository, publisher Publisher, log *slog.Logger, cfg config.Scheduler) *Service {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 12 * time.Hour
	}
	windowDays := cfg.ExpiringWindowDays
	if windowDays <= 0 {
		windowDays = expiry.DefaultWindowDays
	}
	return &Service{
		repo:       repo,
		publisher:  publisher,
		log:        log,
		interval:   interval,
		windowDays: windowDays,
		now:        time.Now,
		sent:       make(map[string]time.Time),
	}
}

// Run выполняет проверку сразу и затем раз в interval, пока не отменён ctx.
func (s *Service) Run(ctx context.Context) {
	s.runNotify(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runNotify(ctx)
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		}
	}
}

// runNotify публикует уведомления и возвращает их число.
func (s *Service) runNotify(ctx context.Context) int {
	s.log.Info("starting search for expiring memberships")
	today := services.Today(s.now())
	yesterday := today.AddDate(0, 0, -1)

	members, err := s.repo.ListAllMembers(ctx)
	if err != nil {
		s.log.Error("failed to list members", sl.Err(err))
		return 0
	}
	payments, err := s.repo.ListAllPayments(ctx)
	if err != nil {
		s.log.Error("failed to list payments", sl.Err(err))
		return 0
	}

	published := 0
	for _, v := range expiry.ViewAll(members, payments, today, s.windowDays) {
		var routingKey string
		switch {
		case v.Status == models.StatusExpiring:
			routingKey = rabbitmq.RoutingExpiring
		case v.Status == models.StatusExpired && !v.Membership.Expiry.Before(yesterday):
			routingKey = rabbitmq.RoutingExpired
		default:
			continue
		}
		if v.Member.Email == "" {
			s.log.Debug("member has no email, skip", slog.String("member_id", v.Member.ID.String()))
			continue
		}

		key := routingKey + ":" + v.Member.ID.String() + ":" + v.Membership.Expiry.Format(time.DateOnly)
		if _, ok := s.sent[key]; ok {
			continue
		}

		msg := models.ExpiringMember{
			MemberID: v.Member.ID,
			Name:     v.Member.Name,
			Email:    v.Member.Email,
			Plan:     v.Membership.Plan,
			Expiry:   v.Membership.Expiry,
		}
		if err := s.publisher.Publish(routingKey, msg); err != nil {
			s.log.Error("failed to publish message", slog.String("routing_key", routingKey), sl.Err(err))
			continue
		}
		s.sent[key] = v.Membership.Expiry
		metrics.Notifications.WithLabelValues(routingKey).Inc()
		published++
	}
	s.forget(yesterday)

	if published == 0 {
		s.log.Info("no new notifications")
	} else {
		s.log.Info("published notifications", slog.Int("count", published))
	}
	return published
}

// forget удаляет записи об уведомлениях, чьи абонементы закончились раньше before.
func (s *Service) forget(before time.Time) {
	for key, exp := range s.sent {
		if exp.Before(before) {
			delete(s.sent, key)
		}
	}
}
