package sharing

import (
	"strings"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// InviteCollaboratorInput holds the parameters for inviting a collaborator.
type InviteCollaboratorInput struct {
	Email string
}

// Validate checks all fields and collects all errors.
func (i InviteCollaboratorInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be an email address"})
	}
	if len(email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "max 254 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RevokeAccessInput holds the parameters for revoking an invitation or grant.
type RevokeAccessInput struct {
	InvitationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RevokeAccessInput) Validate() error {
	if i.InvitationID == uuid.Nil {
		return domain.NewValidationError("invitation_id", "required")
	}
	return nil
}
