package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/goal"
)

// goalService defines the minimal interface needed by GoalHandler.
type goalService interface {
	CreateGoal(ctx context.Context, input goal.CreateGoalInput) (*domain.Goal, error)
	GetGoal(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	ListGoals(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error)
	UpdateGoal(ctx context.Context, input goal.UpdateGoalInput) (*domain.Goal, error)
	ToggleCompletion(ctx context.Context, input goal.ToggleCompletionInput) (*domain.Goal, error)
	RecomputeProgress(ctx context.Context, input goal.RecomputeProgressInput) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, input goal.DeleteGoalInput) error
}

// GoalHandler serves goal REST endpoints.
type GoalHandler struct {
	svc goalService
	log *slog.Logger
}

// NewGoalHandler creates a GoalHandler.
func NewGoalHandler(svc goalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{svc: svc, log: logger.With("handler", "goal")}
}

type createGoalRequest struct {
	AnimalID      string     `json:"animalId"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	GoalType      string     `json:"goalType"`
	AutoCalculate bool       `json:"autoCalculate"`
	Progress      *int       `json:"progress,omitempty"`
}

type updateGoalRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	Progress      *int       `json:"progress,omitempty"`
	AutoCalculate *bool      `json:"autoCalculate,omitempty"`
}

type toggleCompletionRequest struct {
	Completed bool `json:"completed"`
}

type recomputeProgressRequest struct {
	CompletedCount int `json:"completedCount"`
	TargetCount    int `json:"targetCount"`
}

type goalResponse struct {
	ID            string     `json:"id"`
	AnimalID      string     `json:"animalId"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
	GoalType      string     `json:"goalType"`
	Progress      int        `json:"progress"`
	Completed     bool       `json:"completed"`
	AutoCalculate bool       `json:"autoCalculate"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Create handles POST /api/v1/goals.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animalID, err := uuid.Parse(req.AnimalID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animalId")
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), goal.CreateGoalInput{
		AnimalID:      animalID,
		Title:         req.Title,
		Description:   req.Description,
		TargetDate:    req.TargetDate,
		GoalType:      domain.GoalType(req.GoalType),
		AutoCalculate: req.AutoCalculate,
		Progress:      req.Progress,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGoalResponse(g))
}

// Get handles GET /api/v1/goals/{goalID}.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	goalID, err := uuid.Parse(r.PathValue("goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	g, err := h.svc.GetGoal(r.Context(), goalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// ListByAnimal handles GET /api/v1/animals/{animalID}/goals.
func (h *GoalHandler) ListByAnimal(w http.ResponseWriter, r *http.Request) {
	animalID, err := uuid.Parse(r.PathValue("animalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animal id")
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), animalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]goalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, toGoalResponse(g))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/v1/goals/{goalID}.
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID, err := uuid.Parse(r.PathValue("goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.UpdateGoal(r.Context(), goal.UpdateGoalInput{
		GoalID:        goalID,
		Title:         req.Title,
		Description:   req.Description,
		TargetDate:    req.TargetDate,
		Progress:      req.Progress,
		AutoCalculate: req.AutoCalculate,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// ToggleCompletion handles POST /api/v1/goals/{goalID}/completion.
// The body carries the completion status the client currently displays;
// the service flips relative to that so two stale clicks cancel out
// instead of double-completing.
func (h *GoalHandler) ToggleCompletion(w http.ResponseWriter, r *http.Request) {
	goalID, err := uuid.Parse(r.PathValue("goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req toggleCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.ToggleCompletion(r.Context(), goal.ToggleCompletionInput{
		GoalID:             goalID,
		CurrentlyCompleted: req.Completed,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// RecomputeProgress handles POST /api/v1/goals/{goalID}/progress.
func (h *GoalHandler) RecomputeProgress(w http.ResponseWriter, r *http.Request) {
	goalID, err := uuid.Parse(r.PathValue("goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	var req recomputeProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := h.svc.RecomputeProgress(r.Context(), goal.RecomputeProgressInput{
		GoalID: goalID,
		Snapshot: domain.ActivitySnapshot{
			CompletedCount: req.CompletedCount,
			TargetCount:    req.TargetCount,
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGoalResponse(g))
}

// Delete handles DELETE /api/v1/goals/{goalID}.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID, err := uuid.Parse(r.PathValue("goalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid goal id")
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), goal.DeleteGoalInput{GoalID: goalID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toGoalResponse(g *domain.Goal) goalResponse {
	return goalResponse{
		ID:            g.ID.String(),
		AnimalID:      g.AnimalID.String(),
		Title:         g.Title,
		Description:   g.Description,
		TargetDate:    g.TargetDate,
		GoalType:      g.GoalType.String(),
		Progress:      g.Progress,
		Completed:     g.Completed,
		AutoCalculate: g.AutoCalculate,
		CompletedAt:   g.CompletedAt,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
