package goal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// ToggleCompletion writes the negation of the completion status the caller
// observed. Completing a goal clamps progress to 100 and records a derived
// milestone in the same transaction; reopening only clears the flag and
// leaves progress and any recorded milestones untouched. Badge evaluation
// runs after the transaction commits.
func (s *Service) ToggleCompletion(ctx context.Context, input ToggleCompletionInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.authorizeGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	target := !input.CurrentlyCompleted
	now := time.Now().UTC()

	var updated *domain.Goal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var txErr error
		updated, txErr = s.goals.SetCompletion(txCtx, input.GoalID, target, now)
		if txErr != nil {
			return fmt.Errorf("set completion: %w", txErr)
		}

		// Derive a milestone only on an actual transition to completed, so
		// a stale repeat of the same toggle cannot duplicate it.
		if target && !g.Completed {
			if _, txErr = s.milestones.RecordFromGoalCompletion(txCtx, updated); txErr != nil {
				return fmt.Errorf("record completion milestone: %w", txErr)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if target && !g.Completed {
		s.evaluateBadges(ctx, updated.AnimalID)
	}

	s.log.InfoContext(ctx, "goal completion toggled",
		slog.String("goal_id", updated.ID.String()),
		slog.Bool("completed", updated.Completed),
	)

	return updated, nil
}
