// Package member реализует учёт участников зала: регистрацию, продления и вычисление
// статуса абонемента с кешированием карточек в Redis.
package member

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/cache"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/expiry"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/planterm"
	"github.com/magabrotheeeer/gym-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/gym-dashboard/internal/models"
	"github.com/magabrotheeeer/gym-dashboard/internal/services"
)

const cacheTTL = time.Hour

// Repository определяет методы хранилища, нужные сервису участников.
type Repository interface {
	// CreateMember сохраняет участника вместе с первым платежом.
	CreateMember(ctx context.Context, member models.Member, first models.Payment) (int64, error)
	ReadMember(ctx context.Context, id uuid.UUID) (*models.Member, error)
	UpdateMember(ctx context.Context, member models.Member) error
	RemoveMember(ctx context.Context, id uuid.UUID) error
	ListMembers(ctx context.Context, limit, offset int) ([]*models.Member, error)
	ListAllMembers(ctx context.Context) ([]*models.Member, error)
	CountMembers(ctx context.Context) (int, error)
	AddPayment(ctx context.Context, p models.Payment) (int64, error)
	// ListPayments возвращает историю платежей участника в порядке добавления.
	ListPayments(ctx context.Context, memberID uuid.UUID) ([]models.Payment, error)
	ListAllPayments(ctx context.Context) ([]models.Payment, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(keys ...string) error
}

// record то, что лежит в кеше. Статус не кешируется: он зависит от текущей даты.
type record struct {
	Member   models.Member    `json:"member"`
	Payments []models.Payment `json:"payments"`
}

// Service бизнес-логика участников.
type Service struct {
	repo       Repository
	cache      Cache
	log        *slog.Logger
	windowDays int
	now        func() time.Time
}

// New создает сервис участников. windowDays задаёт окно "скоро истекает"; 0 означает значение по умолчанию.
func New(repo Repository, cache Cache, log *slog.Logger, windowDays int) *Service {
	if windowDays <= 0 {
		windowDays = expiry.DefaultWindowDays
	}
	return &Service{
		repo:       repo,
		cache:      cache,
		log:        log,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Register регистрирует участника и записывает его первый платёж. Возвращает ID участника.
func (s *Service) Register(ctx context.Context, req models.DummyMember) (uuid.UUID, error) {
	const op = "member.Register"
	joined, err := services.ParseDate("join_date", req.JoinDate)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("price", req.Price); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	s.checkPlan(req.Plan)

	member := models.Member{
		ID:            uuid.New(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Plan:          req.Plan,
		Price:         req.Price,
		JoinDate:      joined,
		ModeOfPayment: req.ModeOfPayment,
	}
	first := models.Payment{
		MemberID:      member.ID,
		Plan:          req.Plan,
		Price:         req.Price,
		Date:          joined,
		ModeOfPayment: req.ModeOfPayment,
	}
	if _, err := s.repo.CreateMember(ctx, member, first); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered member", slog.String("member_id", member.ID.String()), slog.String("plan", req.Plan))

	s.invalidate(services.ReportKeyFor(joined))
	return member.ID, nil
}

// Read возвращает карточку участника со статусом абонемента на сегодня.
func (s *Service) Read(ctx context.Context, id uuid.UUID) (*models.MemberView, error) {
	const op = "member.Read"
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	view := expiry.View(rec.Member, rec.Payments, services.Today(s.now()), s.windowDays)
	return &view, nil
}

// Update изменяет анкету участника. История платежей не меняется.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.DummyMember) error {
	const op = "member.Update"
	joined, err := services.ParseDate("join_date", req.JoinDate)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("price", req.Price); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.checkPlan(req.Plan)

	member := models.Member{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Plan:          req.Plan,
		Price:         req.Price,
		JoinDate:      joined,
		ModeOfPayment: req.ModeOfPayment,
	}
	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated member", slog.String("member_id", id.String()))

	s.invalidate(cache.MemberKey(id.String()))
	return nil
}

// Remove удаляет участника вместе с платежами и сбрасывает отчёты за затронутые месяцы.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	const op = "member.Remove"
	payments, err := s.repo.ListPayments(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.RemoveMember(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("removed member", slog.String("member_id", id.String()), slog.Int("payments", len(payments)))

	keys := []string{cache.MemberKey(id.String())}
	seen := map[string]bool{}
	for _, p := range payments {
		key := services.ReportKeyFor(p.Date)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	s.invalidate(keys...)
	return nil
}

// List возвращает страницу участников и общее число подходящих записей.
// status: пустая строка, all, active, expiring или expired.
// limit <= 0 означает все записи, начиная с offset.
func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]models.MemberView, int, error) {
	const op = "member.List"
	asOf := services.Today(s.now())

	if status == "" || status == "all" {
		members, err := s.repo.ListMembers(ctx, limit, offset)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		total, err := s.repo.CountMembers(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		payments, err := s.repo.ListAllPayments(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		return expiry.ViewAll(members, payments, asOf, s.windowDays), total, nil
	}

	want := models.MemberStatus(status)
	switch want {
	case models.StatusActive, models.StatusExpiring, models.StatusExpired:
	default:
		return nil, 0, fmt.Errorf("%s: %q: %w", op, status, services.ErrInvalidStatus)
	}

	views, err := s.all(ctx, asOf)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	filtered := views[:0]
	for _, v := range views {
		if v.Status == want {
			filtered = append(filtered, v)
		}
	}
	return page(filtered, limit, offset), len(filtered), nil
}

// AddPayment записывает продление абонемента.
func (s *Service) AddPayment(ctx context.Context, id uuid.UUID, req models.DummyPayment) (int64, error) {
	const op = "member.AddPayment"
	date, err := services.ParseDate("date", req.Date)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if err := services.CheckAmount("price", req.Price); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.checkPlan(req.Plan)

	paymentID, err := s.repo.AddPayment(ctx, models.Payment{
		MemberID:      id,
		Plan:          req.Plan,
		Price:         req.Price,
		Date:          date,
		ModeOfPayment: req.ModeOfPayment,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("added payment",
		slog.String("member_id", id.String()),
		slog.Int64("payment_id", paymentID),
		slog.String("plan", req.Plan),
	)

	s.invalidate(cache.MemberKey(id.String()), services.ReportKeyFor(date))
	return paymentID, nil
}

// Payments возвращает историю платежей участника.
func (s *Service) Payments(ctx context.Context, id uuid.UUID) ([]models.Payment, error) {
	const op = "member.Payments"
	rec, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rec.Payments, nil
}

// Expiring возвращает участников, чей абонемент закончится в ближайшие windowDays дней,
// отсортированных по дате окончания.
func (s *Service) Expiring(ctx context.Context, windowDays int) ([]models.MemberView, error) {
	const op = "member.Expiring"
	if windowDays <= 0 {
		windowDays = s.windowDays
	}
	asOf := services.Today(s.now())

	members, err := s.repo.ListAllMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	payments, err := s.repo.ListAllPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.MemberView
	for _, v := range expiry.ViewAll(members, payments, asOf, windowDays) {
		if v.Status == models.StatusExpiring {
			result = append(result, v)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Membership.Expiry.Before(result[j].Membership.Expiry)
	})
	return result, nil
}

func (s *Service) all(ctx context.Context, asOf time.Time) ([]models.MemberView, error) {
	members, err := s.repo.ListAllMembers(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	return expiry.ViewAll(members, payments, asOf, s.windowDays), nil
}

// load читает участника и его платежи из кеша или из базы.
func (s *Service) load(ctx context.Context, id uuid.UUID) (*record, error) {
	key := cache.MemberKey(id.String())
	var cached record
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
	}
	if found && err == nil {
		return &cached, nil
	}

	member, err := s.repo.ReadMember(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	rec := &record{Member: *member, Payments: payments}
	if err := s.cache.Set(key, rec, cacheTTL); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
	return rec, nil
}

// checkPlan предупреждает о тарифе, который не удалось разобрать. Такой тариф сохраняется
// как есть и считается месячным.
func (s *Service) checkPlan(plan string) {
	if _, ok := planterm.Resolve(plan); !ok {
		s.log.Warn("plan descriptor not recognised, using default term",
			slog.String("plan", plan),
			slog.String("term", planterm.Default.String()),
		)
	}
}

func (s *Service) invalidate(keys ...string) {
	if err := s.cache.Invalidate(keys...); err != nil {
		s.log.Warn("failed to invalidate cache", slog.Any("keys", keys), sl.Err(err))
	}
}

func page(views []models.MemberView, limit, offset int) []models.MemberView {
	offset = max(offset, 0)
	if offset >= len(views) {
		return []models.MemberView{}
	}
	end := len(views)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return views[offset:end]
}
