package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/milestone"
)

// milestoneService defines the minimal interface needed by MilestoneHandler.
type milestoneService interface {
	RecordMilestone(ctx context.Context, input milestone.RecordMilestoneInput) (*domain.Milestone, error)
	ListMilestones(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error)
	DeleteMilestone(ctx context.Context, input milestone.DeleteMilestoneInput) error
}

// MilestoneHandler serves milestone REST endpoints.
type MilestoneHandler struct {
	svc milestoneService
	log *slog.Logger
}

// NewMilestoneHandler creates a MilestoneHandler.
func NewMilestoneHandler(svc milestoneService, logger *slog.Logger) *MilestoneHandler {
	return &MilestoneHandler{svc: svc, log: logger.With("handler", "milestone")}
}

type recordMilestoneRequest struct {
	AnimalID      string    `json:"animalId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	AchievedAt    time.Time `json:"achievedAt"`
	MilestoneType string    `json:"milestoneType"`
	Icon          *string   `json:"icon,omitempty"`
}

type milestoneResponse struct {
	ID            string    `json:"id"`
	AnimalID      string    `json:"animalId"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	AchievedAt    time.Time `json:"achievedAt"`
	MilestoneType string    `json:"milestoneType"`
	Icon          *string   `json:"icon,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Record handles POST /api/v1/milestones.
func (h *MilestoneHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordMilestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animalId")
		return
	}

	m, err := h.svc.RecordMilestone(r.Context(), milestone.RecordMilestoneInput{
		AnimalID:      animalID,
		Title:         req.Title,
		Description:   req.Description,
		AchievedAt:    req.AchievedAt,
		MilestoneType: domain.MilestoneType(req.MilestoneType),
		Icon:          req.Icon,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMilestoneResponse(m))
}

// ListByAnimal handles GET /api/v1/animals/{animalID}/milestones.
func (h *MilestoneHandler) ListByAnimal(w http.ResponseWriter, r *http.Request) {
	animalID, err := uuid.Parse(r.PathValue("animalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animal id")
		return
	}

	milestones, err := h.svc.ListMilestones(r.Context(), animalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]milestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, toMilestoneResponse(m))
	}
	writeJSON(w, http.StatusOK, out)
}

// Delete handles DELETE /api/v1/milestones/{milestoneID}.
func (h *MilestoneHandler) Delete(w http.ResponseWriter, r *http.Request) {
	milestoneID, err := uuid.Parse(r.PathValue("milestoneID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid milestone id")
		return
	}

	err = h.svc.DeleteMilestone(r.Context(), milestone.DeleteMilestoneInput{MilestoneID: milestoneID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMilestoneResponse(m *domain.Milestone) milestoneResponse {
	return milestoneResponse{
		ID:            m.ID.String(),
		AnimalID:      m.AnimalID.String(),
		Title:         m.Title,
		Description:   m.Description,
		AchievedAt:    m.AchievedAt,
		MilestoneType: m.MilestoneType.String(),
		Icon:          m.Icon,
		CreatedAt:     m.CreatedAt,
	}
}
