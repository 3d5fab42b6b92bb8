package milestone

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// RecordMilestone appends a milestone to an animal's achievement log and
// triggers badge evaluation. The achievement date may lie in the past;
// milestones are frequently back-filled from paper records.
func (s *Service) RecordMilestone(ctx context.Context, input RecordMilestoneInput) (*domain.Milestone, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := s.authorizeAnimal(ctx, input.AnimalID)
	if err != nil {
		return nil, err
	}

	created, err := s.milestones.Create(ctx, &domain.Milestone{
		OwnerID:       ownerID,
		AnimalID:      input.AnimalID,
		Title:         strings.TrimSpace(input.Title),
		Description:   input.Description,
		AchievedAt:    input.AchievedAt,
		MilestoneType: input.MilestoneType,
		Icon:          input.Icon,
	})
	if err != nil {
		return nil, fmt.Errorf("create milestone: %w", err)
	}

	s.evaluateBadges(ctx, input.AnimalID)

	s.log.InfoContext(ctx, "milestone recorded",
		slog.String("milestone_id", created.ID.String()),
		slog.String("animal_id", created.AnimalID.String()),
		slog.String("milestone_type", created.MilestoneType.String()),
	)

	return created, nil
}
