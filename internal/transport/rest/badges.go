package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/badge"
)

// badgeService defines the minimal interface needed by BadgeHandler.
type badgeService interface {
	ListBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
	GrantManualBadge(ctx context.Context, input badge.GrantManualBadgeInput) (*domain.Badge, error)
	EvaluateAutomaticBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
	DeleteBadge(ctx context.Context, input badge.DeleteBadgeInput) error
}

// BadgeHandler serves badge REST endpoints.
type BadgeHandler struct {
	svc badgeService
	log *slog.Logger
}

// NewBadgeHandler creates a BadgeHandler.
func NewBadgeHandler(svc badgeService, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{svc: svc, log: logger.With("handler", "badge")}
}

type grantBadgeRequest struct {
	AnimalID    string     `json:"animalId"`
	BadgeType   string     `json:"badgeType"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

type badgeResponse struct {
	ID          string    `json:"id"`
	AnimalID    string    `json:"animalId"`
	BadgeType   string    `json:"badgeType"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	EarnedAt    time.Time `json:"earnedAt"`
	Manual      bool      `json:"manual"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListByAnimal handles GET /api/v1/animals/{animalID}/badges.
func (h *BadgeHandler) ListByAnimal(w http.ResponseWriter, r *http.Request) {
	animalID, err := uuid.Parse(r.PathValue("animalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animal id")
		return
	}

	badges, err := h.svc.ListBadges(r.Context(), animalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]badgeResponse, 0, len(badges))
	for _, b := range badges {
		out = append(out, toBadgeResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Grant handles POST /api/v1/badges.
func (h *BadgeHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var req grantBadgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animalId")
		return
	}

	b, err := h.svc.GrantManualBadge(r.Context(), badge.GrantManualBadgeInput{
		AnimalID:    animalID,
		BadgeType:   domain.BadgeType(req.BadgeType),
		Title:       req.Title,
		Description: req.Description,
		EarnedAt:    req.EarnedAt,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBadgeResponse(b))
}

// Evaluate handles POST /api/v1/animals/{animalID}/badges/evaluate.
// Returns only the badges awarded by this run, possibly an empty list.
func (h *BadgeHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	animalID, err := uuid.Parse(r.PathValue("animalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animal id")
		return
	}

	awarded, err := h.svc.EvaluateAutomaticBadges(r.Context(), animalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]badgeResponse, 0, len(awarded))
	for _, b := range awarded {
		out = append(out, toBadgeResponse(b))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/badges/{badgeID}. Automatic badges are
// refused with 403.
func (h *BadgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	badgeID, err := uuid.Parse(r.PathValue("badgeID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid badge id")
		return
	}

	if err := h.svc.DeleteBadge(r.Context(), badge.DeleteBadgeInput{BadgeID: badgeID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toBadgeResponse(b *domain.Badge) badgeResponse {
	return badgeResponse{
		ID:          b.ID.String(),
		AnimalID:    b.AnimalID.String(),
		BadgeType:   b.BadgeType.String(),
		Title:       b.Title,
		Description: b.Description,
		EarnedAt:    b.EarnedAt,
		Manual:      b.Manual,
		CreatedAt:   b.CreatedAt,
	}
}
