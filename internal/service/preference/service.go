// Package preference implements dashboard widget visibility. The widget
// catalog is injected configuration; the store only remembers deviations the
// user has toggled, and reads merge the two.
package preference

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/config"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

type preferenceRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, widgetID string, visible bool) (*domain.WidgetPreference, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.WidgetPreference, error)
}

// Service provides widget preference operations.
type Service struct {
	prefs   preferenceRepo
	catalog []string
	known   map[string]bool
	log     *slog.Logger
}

// NewService creates a new Preference service around the configured catalog.
func NewService(log *slog.Logger, cfg config.DashboardConfig, prefs preferenceRepo) *Service {
	known := make(map[string]bool, len(cfg.WidgetCatalog))
	for _, id := range cfg.WidgetCatalog {
		known[id] = true
	}
	return &Service{
		prefs:   prefs,
		catalog: cfg.WidgetCatalog,
		known:   known,
		log:     log.With("service", "preference"),
	}
}
