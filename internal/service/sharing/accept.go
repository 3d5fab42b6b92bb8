package sharing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// AcceptPendingInvitations transitions every PENDING invitation addressed to
// the authenticated user's email to ACTIVE, binding the user id and the
// acceptance time. Returns the number of invitations transitioned; zero is a
// normal outcome, so repeated sign-ins change nothing.
func (s *Service) AcceptPendingInvitations(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	accepted, err := s.invitations.AcceptPending(ctx, email, userID, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("accept pending invitations: %w", err)
	}

	if accepted > 0 {
		s.log.InfoContext(ctx, "invitations accepted",
			slog.String("user_id", userID.String()),
			slog.Int("count", accepted),
		)
	}

	return accepted, nil
}
