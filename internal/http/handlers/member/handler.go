// Package member реализует HTTP-обработчики учёта участников зала: регистрацию,
// анкету, продления абонемента и списки с фильтром по статусу.
package member

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-dashboard/internal/models"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// Service описывает бизнес-логику участников, которую использует Handler.
type Service interface {
	Register(ctx context.Context, req models.DummyMember) (uuid.UUID, error)
	Read(ctx context.Context, id uuid.UUID) (*models.MemberView, error)
	Update(ctx context.Context, id uuid.UUID, req models.DummyMember) error
	Remove(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, limit, offset int) ([]models.MemberView, int, error)
	AddPayment(ctx context.Context, id uuid.UUID, req models.DummyPayment) (int64, error)
	Payments(ctx context.Context, id uuid.UUID) ([]models.Payment, error)
	Expiring(ctx context.Context, windowDays int) ([]models.MemberView, error)
}

// Handler обрабатывает запросы /members.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}
