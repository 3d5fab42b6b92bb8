package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/animal"
)

// animalService defines the minimal interface needed by AnimalHandler.
type animalService interface {
	CreateAnimal(ctx context.Context, input animal.CreateAnimalInput) (*domain.Animal, error)
	GetAnimal(ctx context.Context, animalID uuid.UUID) (*domain.Animal, error)
	ListAnimals(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error)
}

// AnimalHandler serves animal profile REST endpoints.
type AnimalHandler struct {
	svc animalService
	log *slog.Logger
}

// NewAnimalHandler creates an AnimalHandler.
func NewAnimalHandler(svc animalService, logger *slog.Logger) *AnimalHandler {
	return &AnimalHandler{svc: svc, log: logger.With("handler", "animal")}
}

type createAnimalRequest struct {
	Name       string  `json:"name"`
	Discipline *string `json:"discipline,omitempty"`
}

type animalResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Name       string    `json:"name"`
	Discipline *string   `json:"discipline,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Create handles POST /api/v1/animals.
func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.svc.CreateAnimal(r.Context(), animal.CreateAnimalInput{
		Name:       req.Name,
		Discipline: req.Discipline,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnimalResponse(a))
}

// Get handles GET /api/v1/animals/{animalID}.
func (h *AnimalHandler) Get(w http.ResponseWriter, r *http.Request) {
	animalID, err := uuid.Parse(r.PathValue("animalID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid animal id")
		return
	}

	a, err := h.svc.GetAnimal(r.Context(), animalID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnimalResponse(a))
}

// List handles GET /api/v1/animals. An optional ownerId query parameter
// lists a shared account's animals instead of the caller's own.
func (h *AnimalHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID := uuid.Nil
	if raw := r.URL.Query().Get("ownerId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid ownerId")
			return
		}
		ownerID = parsed
	}

	animals, err := h.svc.ListAnimals(r.Context(), ownerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]animalResponse, 0, len(animals))
	for _, a := range animals {
		out = append(out, toAnimalResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

func toAnimalResponse(a *domain.Animal) animalResponse {
	return animalResponse{
		ID:         a.ID.String(),
		OwnerID:    a.OwnerID.String(),
		Name:       a.Name,
		Discipline: a.Discipline,
		CreatedAt:  a.CreatedAt,
	}
}
