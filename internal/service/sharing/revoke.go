package sharing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// RevokeAccess deletes an invitation issued by the caller, regardless of
// whether it has been accepted. Deletion takes effect immediately; the
// collaborator's next request is rejected by the access gate.
func (s *Service) RevokeAccess(ctx context.Context, input RevokeAccessInput) error {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	invitation, err := s.invitations.GetByID(ctx, input.InvitationID)
	if err != nil {
		return fmt.Errorf("get invitation: %w", err)
	}
	if invitation.OwnerID != ownerID {
		return domain.ErrForbidden
	}

	if err := s.invitations.Delete(ctx, input.InvitationID); err != nil {
		return fmt.Errorf("delete invitation: %w", err)
	}

	s.log.InfoContext(ctx, "access revoked",
		slog.String("owner_id", ownerID.String()),
		slog.String("invitation_id", input.InvitationID.String()),
		slog.String("status", invitation.Status.String()),
	)

	return nil
}
