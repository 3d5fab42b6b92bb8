package goal

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteGoal removes a goal. Deleting an already-deleted goal reports
// NotFound rather than succeeding silently.
func (s *Service) DeleteGoal(ctx context.Context, input DeleteGoalInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.authorizeGoal(ctx, input.GoalID); err != nil {
		return err
	}

	if err := s.goals.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	s.log.InfoContext(ctx, "goal deleted",
		slog.String("goal_id", input.GoalID.String()),
	)

	return nil
}
