package milestone

import (
	"context"
	"fmt"
	"time"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// RecordFromGoalCompletion derives a milestone from a just-completed goal.
// The goal service invokes it inside the completion transaction, after its
// own access check, so none is repeated here. The milestone type follows the
// goal type and the achievement date is the completion moment.
func (s *Service) RecordFromGoalCompletion(ctx context.Context, g *domain.Goal) (*domain.Milestone, error) {
	achievedAt := time.Now().UTC()
	if g.CompletedAt != nil {
		achievedAt = *g.CompletedAt
	}

	created, err := s.milestones.Create(ctx, &domain.Milestone{
		OwnerID:       g.OwnerID,
		AnimalID:      g.AnimalID,
		Title:         g.Title,
		Description:   g.Description,
		AchievedAt:    achievedAt,
		MilestoneType: domain.MilestoneTypeForGoal(g.GoalType),
	})
	if err != nil {
		return nil, fmt.Errorf("create derived milestone: %w", err)
	}

	return created, nil
}
