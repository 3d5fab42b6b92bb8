package goal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// CreateGoalInput holds the parameters for creating a goal.
type CreateGoalInput struct {
	AnimalID      uuid.UUID
	Title         string
	Description   *string
	TargetDate    *time.Time
	GoalType      domain.GoalType
	AutoCalculate bool

	// Progress is honored for manually tracked goals only; auto-calculated
	// goals always start at 0.
	Progress *int
}

// Validate checks all fields and collects all errors.
func (i CreateGoalInput) Validate() error {
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

	if !i.GoalType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "invalid type"})
	}

	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateGoalInput holds the parameters for partially updating a goal.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	Title         *string
	Description   *string // nil = don't change; ptr("") = clear
	TargetDate    *time.Time
	Progress      *int
	AutoCalculate *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateGoalInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}
	if i.Title == nil && i.Description == nil && i.TargetDate == nil &&
		i.Progress == nil && i.AutoCalculate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > 200 {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 2000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.Progress != nil && (*i.Progress < 0 || *i.Progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleCompletionInput holds the parameters for toggling a goal's completion.
// CurrentlyCompleted is the status the caller observed; the service writes
// its negation, so two stale clients cannot double-toggle.
type ToggleCompletionInput struct {
	GoalID             uuid.UUID
	CurrentlyCompleted bool
}

// Validate checks all fields and collects all errors.
func (i ToggleCompletionInput) Validate() error {
	if i.GoalID == uuid.Nil {
		return domain.NewValidationError("goal_id", "required")
	}
	return nil
}

// RecomputeProgressInput holds the parameters for recomputing an
// auto-calculated goal's progress from an activity snapshot.
type RecomputeProgressInput struct {
	GoalID   uuid.UUID
	Snapshot domain.ActivitySnapshot
}

// Validate checks all fields and collects all errors.
func (i RecomputeProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.GoalID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "goal_id", Message: "required"})
	}
	if i.Snapshot.CompletedCount < 0 {
		errs = append(errs, domain.FieldError{Field: "completed_count", Message: "must not be negative"})
	}
	if i.Snapshot.TargetCount < 0 {
		errs = append(errs, domain.FieldError{Field: "target_count", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteGoalInput holds the parameters for deleting a goal.
type DeleteGoalInput struct {
	GoalID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteGoalInput) Validate() error {
	if i.GoalID == uuid.Nil {
		return domain.NewValidationError("goal_id", "required")
	}
	return nil
}
