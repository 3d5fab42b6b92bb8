package badge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// GrantManualBadge awards a badge by human decision. Manual grants carry no
// uniqueness: a trainer may hand out the same recognition repeatedly.
func (s *Service) GrantManualBadge(ctx context.Context, input GrantManualBadgeInput) (*domain.Badge, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := s.authorizeAnimal(ctx, input.AnimalID)
	if err != nil {
		return nil, err
	}

	earnedAt := time.Now().UTC()
	if input.EarnedAt != nil {
		earnedAt = *input.EarnedAt
	}

	created, err := s.badges.CreateManual(ctx, &domain.Badge{
		OwnerID:     ownerID,
		AnimalID:    input.AnimalID,
		BadgeType:   input.BadgeType,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		EarnedAt:    earnedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("grant badge: %w", err)
	}

	s.log.InfoContext(ctx, "manual badge granted",
		slog.String("badge_id", created.ID.String()),
		slog.String("animal_id", created.AnimalID.String()),
		slog.String("badge_type", created.BadgeType.String()),
	)

	return created, nil
}
