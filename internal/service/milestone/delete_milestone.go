package milestone

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// DeleteMilestone removes a milestone. Badges already awarded on the
// strength of this milestone are kept; awards are never retracted.
func (s *Service) DeleteMilestone(ctx context.Context, input DeleteMilestoneInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	m, err := s.milestones.GetByID(ctx, input.MilestoneID)
	if err != nil {
		return fmt.Errorf("get milestone: %w", err)
	}

	allowed, err := s.access.CanAccess(ctx, m.OwnerID, userID)
	if err != nil {
		return fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if err := s.milestones.Delete(ctx, input.MilestoneID); err != nil {
		return fmt.Errorf("delete milestone: %w", err)
	}

	s.log.InfoContext(ctx, "milestone deleted",
		slog.String("milestone_id", input.MilestoneID.String()),
	)

	return nil
}
