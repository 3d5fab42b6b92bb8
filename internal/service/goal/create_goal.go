package goal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// CreateGoal creates a goal for an animal the caller may act on. The goal is
// owned by the animal's account, not the caller, so a collaborator's goals
// stay with the account when access is revoked.
func (s *Service) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := s.authorizeAnimal(ctx, input.AnimalID)
	if err != nil {
		return nil, err
	}

	progress := 0
	if !input.AutoCalculate && input.Progress != nil {
		progress = *input.Progress
	}

	created, err := s.goals.Create(ctx, &domain.Goal{
		OwnerID:       ownerID,
		AnimalID:      input.AnimalID,
		Title:         strings.TrimSpace(input.Title),
		Description:   trimOrNil(input.Description),
		TargetDate:    input.TargetDate,
		GoalType:      input.GoalType,
		Progress:      progress,
		AutoCalculate: input.AutoCalculate,
	})
	if err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal created",
		slog.String("goal_id", created.ID.String()),
		slog.String("animal_id", created.AnimalID.String()),
		slog.String("goal_type", created.GoalType.String()),
	)

	return created, nil
}
