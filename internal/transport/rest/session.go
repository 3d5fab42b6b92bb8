package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// userMirror refreshes the local copy of the identity provider's account
// record.
type userMirror interface {
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// invitationAcceptor binds pending share invitations to a signed-in user.
type invitationAcceptor interface {
	AcceptPendingInvitations(ctx context.Context) (int, error)
}

// SessionHandler runs the session-start hook: called by the client right
// after sign-in, before any other request.
type SessionHandler struct {
	users       userMirror
	invitations invitationAcceptor
	log         *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(users userMirror, invitations invitationAcceptor, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		users:       users,
		invitations: invitations,
		log:         logger.With("handler", "session"),
	}
}

type sessionStartResponse struct {
	UserID              string `json:"userId"`
	Email               string `json:"email"`
	AcceptedInvitations int    `json:"acceptedInvitations"`
}

type sessionStartRequest struct {
	Name string `json:"name"`
}

// Start handles POST /api/v1/session/start. It mirrors the caller's identity
// claims into the users table and accepts any pending invitations addressed
// to their email. Invitation acceptance failing must never block sign-in, so
// it degrades to a warning.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	email, _ := ctxutil.UserEmailFromCtx(r.Context())

	var req sessionStartRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	u, err := h.users.Upsert(r.Context(), &domain.User{
		ID:    userID,
		Email: domain.NormalizeEmail(email),
		Name:  req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	accepted, err := h.invitations.AcceptPendingInvitations(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "accepting pending invitations failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		accepted = 0
	}

	writeJSON(w, http.StatusOK, sessionStartResponse{
		UserID:              u.ID.String(),
		Email:               u.Email,
		AcceptedInvitations: accepted,
	})
}
