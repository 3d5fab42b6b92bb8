// Package badge implements the Badge repository using PostgreSQL.
// Automatic awards insert with ON CONFLICT DO NOTHING against a partial
// unique index on (animal_id, badge_type) WHERE NOT is_manual, which makes
// concurrent rule evaluation award each type exactly once.
package badge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides badge persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new badge repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const badgeColumns = `id, owner_id, animal_id, badge_type, title, description, earned_at, is_manual, created_at`

const createManualSQL = `
INSERT INTO badges (id, owner_id, animal_id, badge_type, title, description, earned_at, is_manual)
VALUES ($1, $2, $3, $4, $5, $6, $7, true)
RETURNING ` + badgeColumns

const createAutomaticSQL = `
INSERT INTO badges (id, owner_id, animal_id, badge_type, title, description, earned_at, is_manual)
VALUES ($1, $2, $3, $4, $5, $6, $7, false)
ON CONFLICT (animal_id, badge_type) WHERE NOT is_manual DO NOTHING
RETURNING ` + badgeColumns

const getBadgeSQL = `SELECT ` + badgeColumns + ` FROM badges WHERE id = $1`

const listBadgesByAnimalSQL = `
SELECT ` + badgeColumns + `
FROM badges
WHERE animal_id = $1
ORDER BY earned_at DESC, created_at DESC`

const listAutomaticTypesSQL = `SELECT badge_type FROM badges WHERE animal_id = $1 AND NOT is_manual`

const deleteBadgeSQL = `DELETE FROM badges WHERE id = $1`

// CreateManual inserts a human-granted badge. Manual grants carry no
// uniqueness constraint: the same type may be awarded repeatedly.
func (r *Repo) CreateManual(ctx context.Context, b *domain.Badge) (*domain.Badge, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createManualSQL,
		id, b.OwnerID, b.AnimalID, b.BadgeType.String(), b.Title, textPtr(b.Description), b.EarnedAt,
	)

	created, err := scanBadge(row)
	if err != nil {
		return nil, postgres.MapError(err, "badge", id)
	}
	return created, nil
}

// CreateAutomatic inserts a rule-derived badge. If the animal already holds
// an automatic badge of this type — including one inserted by a concurrent
// evaluation — nothing is written and (nil, nil) is returned.
func (r *Repo) CreateAutomatic(ctx context.Context, b *domain.Badge) (*domain.Badge, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createAutomaticSQL,
		id, b.OwnerID, b.AnimalID, b.BadgeType.String(), b.Title, textPtr(b.Description), b.EarnedAt,
	)

	created, err := scanBadge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict swallowed by DO NOTHING: the badge already exists.
			return nil, nil
		}
		return nil, postgres.MapError(err, "badge", id)
	}
	return created, nil
}

// GetByID returns a badge by primary key.
// Returns domain.ErrNotFound if the badge does not exist.
func (r *Repo) GetByID(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBadge(querier.QueryRow(ctx, getBadgeSQL, badgeID))
	if err != nil {
		return nil, postgres.MapError(err, "badge", badgeID)
	}
	return b, nil
}

// ListByAnimal returns all badges for an animal, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBadgesByAnimalSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var result []*domain.Badge
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Badge{}
	}
	return result, nil
}

// ListAutomaticTypes returns the automatic badge types the animal already
// holds. The rule evaluator diffs against this set.
func (r *Repo) ListAutomaticTypes(ctx context.Context, animalID uuid.UUID) (map[domain.BadgeType]bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAutomaticTypesSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("list automatic badge types: %w", err)
	}
	defer rows.Close()

	types := make(map[domain.BadgeType]bool)
	for rows.Next() {
		var badgeType string
		if err := rows.Scan(&badgeType); err != nil {
			return nil, fmt.Errorf("list automatic badge types: %w", err)
		}
		types[domain.BadgeType(badgeType)] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list automatic badge types: %w", err)
	}

	return types, nil
}

// Delete removes a badge.
// Returns domain.ErrNotFound if the badge does not exist.
func (r *Repo) Delete(ctx context.Context, badgeID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteBadgeSQL, badgeID)
	if err != nil {
		return postgres.MapError(err, "badge", badgeID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("badge %s: %w", badgeID, domain.ErrNotFound)
	}
	return nil
}

func scanBadge(row pgx.Row) (*domain.Badge, error) {
	var (
		b           domain.Badge
		badgeType   string
		description pgtype.Text
	)

	err := row.Scan(
		&b.ID, &b.OwnerID, &b.AnimalID, &badgeType, &b.Title, &description,
		&b.EarnedAt, &b.Manual, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.BadgeType = domain.BadgeType(badgeType)
	if description.Valid {
		b.Description = &description.String
	}

	return &b, nil
}

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
