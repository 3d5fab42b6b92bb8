// Package preference implements the dashboard widget preference repository
// using PostgreSQL. Rows are upserted on (user_id, widget_id) with
// last-write-wins semantics and never deleted.
package preference

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides widget preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const upsertPreferenceSQL = `
INSERT INTO dashboard_preferences (user_id, widget_id, is_visible)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, widget_id)
DO UPDATE SET is_visible = EXCLUDED.is_visible, updated_at = now()
RETURNING user_id, widget_id, is_visible, display_order, updated_at`

const listPreferencesSQL = `
SELECT user_id, widget_id, is_visible, display_order, updated_at
FROM dashboard_preferences
WHERE user_id = $1`

// Upsert writes a visibility flag, creating the row on first toggle.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, widgetID string, visible bool) (*domain.WidgetPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.WidgetPreference
	err := querier.QueryRow(ctx, upsertPreferenceSQL, userID, widgetID, visible).
		Scan(&p.UserID, &p.WidgetID, &p.Visible, &p.DisplayOrder, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "preference", userID)
	}

	return &p, nil
}

// ListByUser returns all stored preference rows for a user, including rows
// for widget ids no longer in the catalog — filtering is the service's job.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.WidgetPreference, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listPreferencesSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}
	defer rows.Close()

	var result []*domain.WidgetPreference
	for rows.Next() {
		var p domain.WidgetPreference
		if err := rows.Scan(&p.UserID, &p.WidgetID, &p.Visible, &p.DisplayOrder, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.WidgetPreference{}
	}
	return result, nil
}
