package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// UpdateGoal applies a partial update. Progress edits are rejected for
// auto-calculated goals; switching AutoCalculate off in the same call makes
// the goal manual first, so the edit is then allowed.
func (s *Service) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.authorizeGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	autoCalculate := g.AutoCalculate
	if input.AutoCalculate != nil {
		autoCalculate = *input.AutoCalculate
	}
	if input.Progress != nil && autoCalculate {
		return nil, domain.NewValidationError("progress", "cannot be edited on an auto-calculated goal")
	}

	updated, err := s.goals.Update(ctx, input.GoalID, domain.GoalUpdateParams{
		Title:         input.Title,
		Description:   input.Description,
		TargetDate:    input.TargetDate,
		Progress:      input.Progress,
		AutoCalculate: input.AutoCalculate,
	})
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal updated",
		slog.String("goal_id", updated.ID.String()),
	)

	return updated, nil
}
