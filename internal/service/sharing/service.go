// Package sharing implements the collaborative access component: issuing
// invitations, activating them at sign-in, revoking grants, and the access
// gate the goal/milestone/badge services consult.
package sharing

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

type invitationRepo interface {
	Create(ctx context.Context, ownerID uuid.UUID, email string) (*domain.ShareInvitation, error)
	GetByID(ctx context.Context, invitationID uuid.UUID) (*domain.ShareInvitation, error)
	AcceptPending(ctx context.Context, email string, collaboratorID uuid.UUID, at time.Time) (int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShareInvitation, error)
	ListActiveByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]*domain.ShareInvitation, error)
	ExistsActive(ctx context.Context, ownerID, collaboratorID uuid.UUID) (bool, error)
	Delete(ctx context.Context, invitationID uuid.UUID) error
}

// Service provides shared access management operations.
type Service struct {
	invitations invitationRepo
	log         *slog.Logger
}

// NewService creates a new Sharing service.
func NewService(log *slog.Logger, invitations invitationRepo) *Service {
	return &Service{
		invitations: invitations,
		log:         log.With("service", "sharing"),
	}
}

// CanAccess reports whether userID may read and write ownerID's data: either
// they are the same account or an ACTIVE grant exists.
func (s *Service) CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error) {
	if ownerID == userID {
		return true, nil
	}
	return s.invitations.ExistsActive(ctx, ownerID, userID)
}
