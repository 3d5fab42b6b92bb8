// Package badge implements badge awarding: a data-driven rule evaluator for
// the automatic set and manual grants for the rest. Evaluation is idempotent
// and safe to run after every goal or milestone change.
package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/config"
	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type badgeRepo interface {
	CreateManual(ctx context.Context, b *domain.Badge) (*domain.Badge, error)
	CreateAutomatic(ctx context.Context, b *domain.Badge) (*domain.Badge, error)
	GetByID(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error)
	ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
	ListAutomaticTypes(ctx context.Context, animalID uuid.UUID) (map[domain.BadgeType]bool, error)
	Delete(ctx context.Context, badgeID uuid.UUID) error
}

type goalCounter interface {
	CountCompletedByType(ctx context.Context, animalID uuid.UUID) (map[domain.GoalType]int, error)
}

type milestoneCounter interface {
	CountByType(ctx context.Context, animalID uuid.UUID) (map[domain.MilestoneType]int, error)
}

type animalDirectory interface {
	GetOwnerID(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error)
}

type accessChecker interface {
	CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error)
}

// Service provides badge operations.
type Service struct {
	badges     badgeRepo
	goals      goalCounter
	milestones milestoneCounter
	animals    animalDirectory
	access     accessChecker
	rules      []awardRule
	log        *slog.Logger
}

// NewService creates a new Badge service. Award thresholds come from cfg so
// deployments can tune them without a code change.
func NewService(
	log *slog.Logger,
	cfg config.BadgesConfig,
	badges badgeRepo,
	goals goalCounter,
	milestones milestoneCounter,
	animals animalDirectory,
	access accessChecker,
) *Service {
	return &Service{
		badges:     badges,
		goals:      goals,
		milestones: milestones,
		animals:    animals,
		access:     access,
		rules:      buildRules(cfg),
		log:        log.With("service", "badge"),
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
