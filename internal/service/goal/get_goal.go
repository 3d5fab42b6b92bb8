package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// GetGoal returns a single goal the caller may see.
func (s *Service) GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	if goalID == uuid.Nil {
		return nil, domain.NewValidationError("goal_id", "required")
	}
	return s.authorizeGoal(ctx, goalID)
}

// ListGoals returns all goals for an animal the caller may see, newest first.
func (s *Service) ListGoals(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error) {
	if animalID == uuid.Nil {
		return nil, domain.NewValidationError("animal_id", "required")
	}

	if _, err := s.authorizeAnimal(ctx, animalID); err != nil {
		return nil, err
	}

	goals, err := s.goals.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}
