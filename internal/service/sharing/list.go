package sharing

import (
	"context"
	"fmt"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// ListCollaborators returns every invitation the caller has issued, pending
// and active alike.
func (s *Service) ListCollaborators(ctx context.Context) ([]*domain.ShareInvitation, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	invitations, err := s.invitations.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return invitations, nil
}

// ListGrantedAccess returns the ACTIVE grants where the caller is the
// collaborator, i.e. the foreign accounts they can act on.
func (s *Service) ListGrantedAccess(ctx context.Context) ([]*domain.ShareInvitation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	grants, err := s.invitations.ListActiveByCollaborator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list granted access: %w", err)
	}
	return grants, nil
}
