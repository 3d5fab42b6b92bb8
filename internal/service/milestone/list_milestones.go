package milestone

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// ListMilestones returns an animal's achievement log, most recent first.
func (s *Service) ListMilestones(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error) {
	if animalID == uuid.Nil {
		return nil, domain.NewValidationError("animal_id", "required")
	}

	if _, err := s.authorizeAnimal(ctx, animalID); err != nil {
		return nil, err
	}

	milestones, err := s.milestones.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	return milestones, nil
}
