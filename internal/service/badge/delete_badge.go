package badge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// DeleteBadge removes a manually granted badge. Automatic badges reflect
// recorded history and cannot be deleted; they disappear only with the
// animal itself.
func (s *Service) DeleteBadge(ctx context.Context, input DeleteBadgeInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	b, err := s.badges.GetByID(ctx, input.BadgeID)
	if err != nil {
		return fmt.Errorf("get badge: %w", err)
	}

	allowed, err := s.access.CanAccess(ctx, b.OwnerID, userID)
	if err != nil {
		return fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if !b.Manual {
		return fmt.Errorf("automatic badge: %w", domain.ErrForbidden)
	}

	if err := s.badges.Delete(ctx, input.BadgeID); err != nil {
		return fmt.Errorf("delete badge: %w", err)
	}

	s.log.InfoContext(ctx, "badge deleted",
		slog.String("badge_id", input.BadgeID.String()),
	)

	return nil
}

// ListBadges returns an animal's badges, newest first.
func (s *Service) ListBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error) {
	if animalID == uuid.Nil {
		return nil, domain.NewValidationError("animal_id", "required")
	}

	if _, err := s.authorizeAnimal(ctx, animalID); err != nil {
		return nil, err
	}

	badges, err := s.badges.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return badges, nil
}
