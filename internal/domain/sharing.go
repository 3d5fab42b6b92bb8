package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShareInvitation grants a collaborator, identified by email, access to the
// owner's full data set. It starts PENDING and becomes ACTIVE exactly once,
// when a user whose account email matches signs in. Revocation is deletion
// of the record, not a state transition.
type ShareInvitation struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	CollaboratorEmail string
	CollaboratorID    *uuid.UUID
	Status            InvitationStatus
	AcceptedAt        *time.Time
	CreatedAt         time.Time
}

// IsActive reports whether the invitation has been accepted.
func (i *ShareInvitation) IsActive() bool {
	return i.Status == InvitationStatusActive
}
