// Package user implements the identity mirror repository using PostgreSQL.
// Accounts are created upstream; this table only mirrors the claims the
// session-start hook sees, keyed by the upstream subject id.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides user mirror persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, created_at`

const upsertUserSQL = `
INSERT INTO users (id, email, name)
VALUES ($1, $2, $3)
ON CONFLICT (id)
DO UPDATE SET email = EXCLUDED.email, name = EXCLUDED.name
RETURNING ` + userColumns

const getUserSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// Upsert mirrors the authenticated identity, refreshing email and name on
// every sign-in. Email must already be normalized.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var mirrored domain.User
	err := querier.QueryRow(ctx, upsertUserSQL, u.ID, u.Email, u.Name).
		Scan(&mirrored.ID, &mirrored.Email, &mirrored.Name, &mirrored.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return &mirrored, nil
}

// GetByID returns a mirrored user by id.
// Returns domain.ErrNotFound if the user has never signed in.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var u domain.User
	err := querier.QueryRow(ctx, getUserSQL, userID).
		Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", userID)
	}

	return &u, nil
}
