package goal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// RecomputeProgress derives progress from an activity snapshot for an
// auto-calculated goal. Manually tracked goals are returned unchanged; the
// activity collaborators fire this for every goal they touch and must not
// clobber hand-set progress.
func (s *Service) RecomputeProgress(ctx context.Context, input RecomputeProgressInput) (*domain.Goal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.authorizeGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	if !g.AutoCalculate {
		return g, nil
	}

	progress := input.Snapshot.ProgressPercent()
	if progress == g.Progress {
		return g, nil
	}

	updated, err := s.goals.SetProgress(ctx, input.GoalID, progress)
	if err != nil {
		return nil, fmt.Errorf("set progress: %w", err)
	}

	s.log.InfoContext(ctx, "goal progress recomputed",
		slog.String("goal_id", updated.ID.String()),
		slog.Int("progress", updated.Progress),
	)

	return updated, nil
}
