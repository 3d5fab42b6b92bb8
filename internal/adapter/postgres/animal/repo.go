// Package animal implements the animal profile repository using PostgreSQL.
// Profiles are the FK target every goal, milestone, and badge hangs off.
package animal

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

// Repo provides animal profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new animal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const animalColumns = `id, owner_id, name, discipline, created_at`

const createAnimalSQL = `
INSERT INTO animals (id, owner_id, name, discipline)
VALUES ($1, $2, $3, $4)
RETURNING ` + animalColumns

const getAnimalSQL = `SELECT ` + animalColumns + ` FROM animals WHERE id = $1`

const getOwnerIDSQL = `SELECT owner_id FROM animals WHERE id = $1`

const listAnimalsByOwnerSQL = `
SELECT ` + animalColumns + `
FROM animals
WHERE owner_id = $1
ORDER BY created_at`

// Create inserts an animal profile and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := a.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createAnimalSQL, id, a.OwnerID, a.Name, textPtr(a.Discipline))

	created, err := scanAnimal(row)
	if err != nil {
		return nil, postgres.MapError(err, "animal", id)
	}
	return created, nil
}

// GetByID returns an animal by primary key.
// Returns domain.ErrNotFound if the animal does not exist.
func (r *Repo) GetByID(ctx context.Context, animalID uuid.UUID) (*domain.Animal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAnimal(querier.QueryRow(ctx, getAnimalSQL, animalID))
	if err != nil {
		return nil, postgres.MapError(err, "animal", animalID)
	}
	return a, nil
}

// GetOwnerID resolves the owning account of an animal. Services call this
// before access checks, so it avoids loading the full profile.
func (r *Repo) GetOwnerID(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var ownerID uuid.UUID
	if err := querier.QueryRow(ctx, getOwnerIDSQL, animalID).Scan(&ownerID); err != nil {
		return uuid.Nil, postgres.MapError(err, "animal", animalID)
	}
	return ownerID, nil
}

// ListByOwner returns all animals owned by an account, oldest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAnimalsByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	var result []*domain.Animal
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Animal{}
	}
	return result, nil
}

func scanAnimal(row pgx.Row) (*domain.Animal, error) {
	var (
		a          domain.Animal
		discipline pgtype.Text
	)

	err := row.Scan(&a.ID, &a.OwnerID, &a.Name, &discipline, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if discipline.Valid {
		a.Discipline = &discipline.String
	}

	return &a, nil
}

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
