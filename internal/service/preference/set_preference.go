package preference

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// SetPreferenceInput holds the parameters for one visibility toggle.
type SetPreferenceInput struct {
	WidgetID string
	Visible  bool
}

// Validate checks all fields and collects all errors.
func (i SetPreferenceInput) Validate() error {
	if strings.TrimSpace(i.WidgetID) == "" {
		return domain.NewValidationError("widget_id", "required")
	}
	return nil
}

// SetPreference stores a visibility flag, last write wins. Widget ids
// outside the configured catalog are rejected instead of stored, so a client
// typo cannot create dead rows.
func (s *Service) SetPreference(ctx context.Context, input SetPreferenceInput) (*domain.WidgetPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.known[input.WidgetID] {
		return nil, domain.NewValidationError("widget_id", "unknown widget")
	}

	updated, err := s.prefs.Upsert(ctx, userID, input.WidgetID, input.Visible)
	if err != nil {
		return nil, fmt.Errorf("upsert preference: %w", err)
	}

	s.log.InfoContext(ctx, "widget preference set",
		slog.String("user_id", userID.String()),
		slog.String("widget_id", input.WidgetID),
		slog.Bool("visible", input.Visible),
	)

	return updated, nil
}
