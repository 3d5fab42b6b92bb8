package preference

import (
	"context"
	"fmt"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

// GetPreferences returns one entry per catalog widget, in catalog order.
// Widgets the user never toggled are visible; stored rows for ids no longer
// in the catalog are dropped from the result without being deleted, so a
// retired widget that returns gets its old setting back.
func (s *Service) GetPreferences(ctx context.Context) ([]*domain.WidgetPreference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stored, err := s.prefs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	byWidget := make(map[string]*domain.WidgetPreference, len(stored))
	for _, p := range stored {
		byWidget[p.WidgetID] = p
	}

	result := make([]*domain.WidgetPreference, 0, len(s.catalog))
	for i, widgetID := range s.catalog {
		if p, ok := byWidget[widgetID]; ok {
			result = append(result, p)
			continue
		}
		result = append(result, &domain.WidgetPreference{
			UserID:       userID,
			WidgetID:     widgetID,
			Visible:      true,
			DisplayOrder: i,
		})
	}

	return result, nil
}
