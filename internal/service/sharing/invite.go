package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// InviteCollaborator creates a PENDING invitation for the given email on the
// caller's account. The email does not have to belong to a known user; the
// invitation activates whenever a matching account signs in.
func (s *Service) InviteCollaborator(ctx context.Context, input InviteCollaboratorInput) (*domain.ShareInvitation, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := domain.NormalizeEmail(input.Email)

	if callerEmail, ok := ctxutil.UserEmailFromCtx(ctx); ok && callerEmail == email {
		return nil, domain.NewValidationError("email", "cannot invite yourself")
	}

	invitation, err := s.invitations.Create(ctx, ownerID, email)
	if err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	s.log.InfoContext(ctx, "collaborator invited",
		slog.String("owner_id", ownerID.String()),
		slog.String("invitation_id", invitation.ID.String()),
	)

	return invitation, nil
}
