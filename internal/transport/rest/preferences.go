package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/internal/service/preference"
)

// preferenceService defines the minimal interface needed by PreferenceHandler.
type preferenceService interface {
	GetPreferences(ctx context.Context) ([]*domain.WidgetPreference, error)
	SetPreference(ctx context.Context, input preference.SetPreferenceInput) (*domain.WidgetPreference, error)
}

// PreferenceHandler serves dashboard widget preference endpoints.
type PreferenceHandler struct {
	svc preferenceService
	log *slog.Logger
}

// NewPreferenceHandler creates a PreferenceHandler.
func NewPreferenceHandler(svc preferenceService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{svc: svc, log: logger.With("handler", "preference")}
}

type setPreferenceRequest struct {
	Visible bool `json:"visible"`
}

type preferenceResponse struct {
	WidgetID     string `json:"widgetId"`
	Visible      bool   `json:"visible"`
	DisplayOrder int    `json:"displayOrder"`
}

// List handles GET /api/v1/preferences/widgets. The response always covers
// the full widget catalog, stored toggles merged over defaults.
func (h *PreferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.GetPreferences(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]preferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out = append(out, toPreferenceResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// Set handles PUT /api/v1/preferences/widgets/{widgetID}.
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	widgetID := r.PathValue("widgetID")

	var req setPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.SetPreference(r.Context(), preference.SetPreferenceInput{
		WidgetID: widgetID,
		Visible:  req.Visible,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPreferenceResponse(p))
}

func toPreferenceResponse(p *domain.WidgetPreference) preferenceResponse {
	return preferenceResponse{
		WidgetID:     p.WidgetID,
		Visible:      p.Visible,
		DisplayOrder: p.DisplayOrder,
	}
}
