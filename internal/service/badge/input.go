package badge

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// GrantManualBadgeInput holds the parameters for a manual badge grant.
type GrantManualBadgeInput struct {
	AnimalID    uuid.UUID
	BadgeType   domain.BadgeType
	Title       string
	Description *string
	EarnedAt    *time.Time // nil = now
}

// Validate checks all fields and collects all errors.
func (i GrantManualBadgeInput) Validate() error {
	var errs []domain.FieldError

	if i.AnimalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "animal_id", Message: "required"})
	}

	if !i.BadgeType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "badge_type", Message: "invalid type"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteBadgeInput holds the parameters for deleting a badge.
type DeleteBadgeInput struct {
	BadgeID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteBadgeInput) Validate() error {
	if i.BadgeID == uuid.Nil {
		return domain.NewValidationError("badge_id", "required")
	}
	return nil
}
