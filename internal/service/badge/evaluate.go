package badge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// EvaluateAutomaticBadges checks every award rule against the animal's
// current counters and awards the satisfied types the animal does not hold
// yet. The insert swallows conflicts, so concurrent evaluations of the same
// animal award each type exactly once; the losing evaluation simply omits
// the badge from its result. Running with no new data returns an empty
// slice and no error.
func (s *Service) EvaluateAutomaticBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error) {
	if animalID == uuid.Nil {
		return nil, domain.NewValidationError("animal_id", "required")
	}

	ownerID, err := s.authorizeAnimal(ctx, animalID)
	if err != nil {
		return nil, err
	}

	held, err := s.badges.ListAutomaticTypes(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("list held badge types: %w", err)
	}

	awarded := []*domain.Badge{}
	if len(held) == len(s.rules) {
		return awarded, nil
	}

	stats, err := s.loadStats(ctx, animalID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, rule := range s.rules {
		if held[rule.badgeType] || !rule.satisfied(stats) {
			continue
		}

		description := rule.description
		created, err := s.badges.CreateAutomatic(ctx, &domain.Badge{
			OwnerID:     ownerID,
			AnimalID:    animalID,
			BadgeType:   rule.badgeType,
			Title:       rule.title,
			Description: &description,
			EarnedAt:    now,
		})
		if err != nil {
			return nil, fmt.Errorf("award %s: %w", rule.badgeType, err)
		}
		if created == nil {
			// A concurrent evaluation already awarded this type.
			continue
		}

		s.log.InfoContext(ctx, "automatic badge awarded",
			slog.String("animal_id", animalID.String()),
			slog.String("badge_type", created.BadgeType.String()),
		)
		awarded = append(awarded, created)
	}

	return awarded, nil
}

func (s *Service) loadStats(ctx context.Context, animalID uuid.UUID) (domain.AchievementStats, error) {
	goalCounts, err := s.goals.CountCompletedByType(ctx, animalID)
	if err != nil {
		return domain.AchievementStats{}, fmt.Errorf("count completed goals: %w", err)
	}

	milestoneCounts, err := s.milestones.CountByType(ctx, animalID)
	if err != nil {
		return domain.AchievementStats{}, fmt.Errorf("count milestones: %w", err)
	}

	return domain.AchievementStats{
		CompletedGoalsByType:  goalCounts,
		MilestoneCountsByType: milestoneCounts,
	}, nil
}
