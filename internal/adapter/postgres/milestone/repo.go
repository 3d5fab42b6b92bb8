// Package milestone implements the Milestone repository using PostgreSQL.
// Milestones are an append-only log: insert, read, delete. No update path
// exists on purpose.
package milestone

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides milestone persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new milestone repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const milestoneColumns = `id, owner_id, animal_id, title, description, achieved_at, milestone_type, icon, created_at`

const createMilestoneSQL = `
INSERT INTO milestones (id, owner_id, animal_id, title, description, achieved_at, milestone_type, icon)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + milestoneColumns

const getMilestoneSQL = `SELECT ` + milestoneColumns + ` FROM milestones WHERE id = $1`

const listMilestonesByAnimalSQL = `
SELECT ` + milestoneColumns + `
FROM milestones
WHERE animal_id = $1
ORDER BY achieved_at DESC, created_at DESC`

const deleteMilestoneSQL = `DELETE FROM milestones WHERE id = $1`

const countByTypeSQL = `
SELECT milestone_type, count(*)
FROM milestones
WHERE animal_id = $1
GROUP BY milestone_type`

// Create appends a milestone and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createMilestoneSQL,
		id, m.OwnerID, m.AnimalID, m.Title, textPtr(m.Description),
		m.AchievedAt, m.MilestoneType.String(), textPtr(m.Icon),
	)

	created, err := scanMilestone(row)
	if err != nil {
		return nil, postgres.MapError(err, "milestone", id)
	}
	return created, nil
}

// GetByID returns a milestone by primary key.
// Returns domain.ErrNotFound if the milestone does not exist.
func (r *Repo) GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	m, err := scanMilestone(querier.QueryRow(ctx, getMilestoneSQL, milestoneID))
	if err != nil {
		return nil, postgres.MapError(err, "milestone", milestoneID)
	}
	return m, nil
}

// ListByAnimal returns all milestones for an animal, most recent achievement
// first. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listMilestonesByAnimalSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("list milestones: %w", err)
	}
	defer rows.Close()

	var result []*domain.Milestone
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Milestone{}
	}
	return result, nil
}

// Delete removes a milestone.
// Returns domain.ErrNotFound if the milestone does not exist.
func (r *Repo) Delete(ctx context.Context, milestoneID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteMilestoneSQL, milestoneID)
	if err != nil {
		return postgres.MapError(err, "milestone", milestoneID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("milestone %s: %w", milestoneID, domain.ErrNotFound)
	}
	return nil
}

// CountByType returns milestone counts per type for one animal. Types with
// no milestones are absent from the map.
func (r *Repo) CountByType(ctx context.Context, animalID uuid.UUID) (map[domain.MilestoneType]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByTypeSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("count milestones: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.MilestoneType]int)
	for rows.Next() {
		var (
			milestoneType string
			count         int
		)
		if err := rows.Scan(&milestoneType, &count); err != nil {
			return nil, fmt.Errorf("count milestones: %w", err)
		}
		counts[domain.MilestoneType(milestoneType)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count milestones: %w", err)
	}

	return counts, nil
}

func scanMilestone(row pgx.Row) (*domain.Milestone, error) {
	var (
		m             domain.Milestone
		milestoneType string
		description   pgtype.Text
		icon          pgtype.Text
	)

	err := row.Scan(
		&m.ID, &m.OwnerID, &m.AnimalID, &m.Title, &description,
		&m.AchievedAt, &milestoneType, &icon, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.MilestoneType = domain.MilestoneType(milestoneType)
	if description.Valid {
		m.Description = &description.String
	}
	if icon.Valid {
		m.Icon = &icon.String
	}

	return &m, nil
}

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
