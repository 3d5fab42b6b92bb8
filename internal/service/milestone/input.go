package milestone

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// RecordMilestoneInput holds the parameters for recording a milestone.
type RecordMilestoneInput struct {
	AnimalID      uuid.UUID
	Title         string
	Description   *string
	AchievedAt    time.Time
	MilestoneType domain.MilestoneType
	Icon          *string
}

// Validate checks all fields and collects all errors.
func (i RecordMilestoneInput) Validate() error {
	var errs []domain.FieldError

	if i.AnimalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "animal_id", Message: "required"})
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

	if i.AchievedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "achieved_at", Message: "required"})
	}

	if !i.MilestoneType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "milestone_type", Message: "invalid type"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteMilestoneInput holds the parameters for deleting a milestone.
type DeleteMilestoneInput struct {
	MilestoneID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteMilestoneInput) Validate() error {
	if i.MilestoneID == uuid.Nil {
		return domain.NewValidationError("milestone_id", "required")
	}
	return nil
}
