// Package milestone implements the achievement log: free-form records plus
// the derived records goal completion produces. Milestones feed the badge
// rule evaluator's counters.
package milestone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type milestoneRepo interface {
	Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error)
	GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error)
	Delete(ctx context.Context, milestoneID uuid.UUID) error
}

type animalDirectory interface {
	GetOwnerID(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error)
}

type accessChecker interface {
	CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error)
}

type badgeEvaluator interface {
	EvaluateAutomaticBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
}

// Service provides milestone operations.
type Service struct {
	milestones milestoneRepo
	animals    animalDirectory
	access     accessChecker
	badges     badgeEvaluator
	log        *slog.Logger
}

// NewService creates a new Milestone service.
func NewService(
	log *slog.Logger,
	milestones milestoneRepo,
	animals animalDirectory,
	access accessChecker,
	badges badgeEvaluator,
) *Service {
	return &Service{
		milestones: milestones,
		animals:    animals,
		access:     access,
		badges:     badges,
		log:        log.With("service", "milestone"),
	}
}

func (s *Service) authorizeAnimal(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	ownerID, err := s.animals.GetOwnerID(ctx, animalID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve animal owner: %w", err)
	}

	allowed, err := s.access.CanAccess(ctx, ownerID, userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return uuid.Nil, domain.ErrForbidden
	}

	return ownerID, nil
}

// evaluateBadges runs automatic badge evaluation after a milestone was
// recorded. Failures are logged, never propagated.
func (s *Service) evaluateBadges(ctx context.Context, animalID uuid.UUID) {
	if _, err := s.badges.EvaluateAutomaticBadges(ctx, animalID); err != nil {
		s.log.ErrorContext(ctx, "badge evaluation failed",
			slog.String("animal_id", animalID.String()),
			slog.String("error", err.Error()),
		)
	}
}
