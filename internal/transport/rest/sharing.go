package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/sharing"
)

// sharingService defines the minimal interface needed by SharingHandler.
type sharingService interface {
	InviteCollaborator(ctx context.Context, input sharing.InviteCollaboratorInput) (*domain.ShareInvitation, error)
	ListCollaborators(ctx context.Context) ([]*domain.ShareInvitation, error)
	ListGrantedAccess(ctx context.Context) ([]*domain.ShareInvitation, error)
	RevokeAccess(ctx context.Context, input sharing.RevokeAccessInput) error
}

// SharingHandler serves shared-access REST endpoints.
type SharingHandler struct {
	svc sharingService
	log *slog.Logger
}

// NewSharingHandler creates a SharingHandler.
func NewSharingHandler(svc sharingService, logger *slog.Logger) *SharingHandler {
	return &SharingHandler{svc: svc, log: logger.With("handler", "sharing")}
}

type inviteRequest struct {
	Email string `json:"email"`
}

type invitationResponse struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"ownerId"`
	CollaboratorEmail string     `json:"collaboratorEmail"`
	CollaboratorID    *string    `json:"collaboratorId,omitempty"`
	Status            string     `json:"status"`
	AcceptedAt        *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// Invite handles POST /api/v1/sharing/invitations.
func (h *SharingHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	inv, err := h.svc.InviteCollaborator(r.Context(), sharing.InviteCollaboratorInput{
		Email: req.Email,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// ListCollaborators handles GET /api/v1/sharing/invitations: everyone the
// caller has invited, pending and active.
func (h *SharingHandler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.svc.ListCollaborators(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvitationResponses(invitations))
}

// ListGranted handles GET /api/v1/sharing/granted: the accounts the caller
// has been granted access to.
func (h *SharingHandler) ListGranted(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.svc.ListGrantedAccess(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvitationResponses(invitations))
}

// Revoke handles DELETE /api/v1/sharing/invitations/{invitationID}.
func (h *SharingHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	invitationID, err := uuid.Parse(r.PathValue("invitationID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid invitation id")
		return
	}

	err = h.svc.RevokeAccess(r.Context(), sharing.RevokeAccessInput{InvitationID: invitationID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toInvitationResponse(inv *domain.ShareInvitation) invitationResponse {
	resp := invitationResponse{
		ID:                inv.ID.String(),
		OwnerID:           inv.OwnerID.String(),
		CollaboratorEmail: inv.CollaboratorEmail,
		Status:            inv.Status.String(),
		AcceptedAt:        inv.AcceptedAt,
		CreatedAt:         inv.CreatedAt,
	}
	if inv.CollaboratorID != nil {
		id := inv.CollaboratorID.String()
		resp.CollaboratorID = &id
	}
	return resp
}

func toInvitationResponses(invitations []*domain.ShareInvitation) []invitationResponse {
	out := make([]invitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		out = append(out, toInvitationResponse(inv))
	}
	return out
}
