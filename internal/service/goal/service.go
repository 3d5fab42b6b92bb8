// Package goal implements the goal lifecycle: creation, partial updates,
// completion toggling with milestone derivation and badge evaluation, and
// activity-driven progress recomputation.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type goalRepo interface {
	Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByID(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error)
	Update(ctx context.Context, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error)
	SetCompletion(ctx context.Context, goalID uuid.UUID, completed bool, at time.Time) (*domain.Goal, error)
	SetProgress(ctx context.Context, goalID uuid.UUID, progress int) (*domain.Goal, error)
	Delete(ctx context.Context, goalID uuid.UUID) error
}

type animalDirectory interface {
	GetOwnerID(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error)
}

type accessChecker interface {
	CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error)
}

type milestoneRecorder interface {
	RecordFromGoalCompletion(ctx context.Context, g *domain.Goal) (*domain.Milestone, error)
}

type badgeEvaluator interface {
	EvaluateAutomaticBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides goal management operations.
type Service struct {
	goals      goalRepo
	animals    animalDirectory
	access     accessChecker
	milestones milestoneRecorder
	badges     badgeEvaluator
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Goal service.
func NewService(
	log *slog.Logger,
	goals goalRepo,
	animals animalDirectory,
	access accessChecker,
	milestones milestoneRecorder,
	badges badgeEvaluator,
	tx txManager,
) *Service {
	return &Service{
		goals:      goals,
		animals:    animals,
		access:     access,
		milestones: milestones,
		badges:     badges,
		tx:         tx,
		log:        log.With("service", "goal"),
	}
}

// authorizeAnimal resolves the animal's owning account and verifies the
// caller may act on it. Returns the owner id.
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

// authorizeGoal loads a goal and verifies the caller may act on its account.
func (s *Service) authorizeGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	g, err := s.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}

	allowed, err := s.access.CanAccess(ctx, g.OwnerID, userID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return g, nil
}

// evaluateBadges runs automatic badge evaluation after a state change.
// Evaluation failure is logged, never propagated: the triggering operation
// has already committed and must not be reported as failed.
func (s *Service) evaluateBadges(ctx context.Context, animalID uuid.UUID) {
	awarded, err := s.badges.EvaluateAutomaticBadges(ctx, animalID)
	if err != nil {
		s.log.ErrorContext(ctx, "badge evaluation failed",
			slog.String("animal_id", animalID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	for _, b := range awarded {
		s.log.InfoContext(ctx, "badge awarded",
			slog.String("animal_id", animalID.String()),
			slog.String("badge_type", b.BadgeType.String()),
		)
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
