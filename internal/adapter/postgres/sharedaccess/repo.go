// Package sharedaccess implements the ShareInvitation repository using
// PostgreSQL. The pending→active transition is a single guarded UPDATE, so
// concurrent sign-ins from the same user are naturally idempotent.
package sharedaccess

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides shared-access persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shared-access repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const invitationColumns = `id, owner_id, collaborator_email, collaborator_id, status, accepted_at, created_at`

const createInvitationSQL = `
INSERT INTO shared_access (id, owner_id, collaborator_email, status)
VALUES ($1, $2, $3, 'PENDING')
RETURNING ` + invitationColumns

const getInvitationSQL = `SELECT ` + invitationColumns + ` FROM shared_access WHERE id = $1`

const acceptPendingSQL = `
UPDATE shared_access
SET status = 'ACTIVE', collaborator_id = $2, accepted_at = $3
WHERE collaborator_email = $1 AND status = 'PENDING'`

const listByOwnerSQL = `
SELECT ` + invitationColumns + `
FROM shared_access
WHERE owner_id = $1
ORDER BY created_at DESC`

const listActiveByCollaboratorSQL = `
SELECT ` + invitationColumns + `
FROM shared_access
WHERE collaborator_id = $1 AND status = 'ACTIVE'
ORDER BY accepted_at DESC`

const existsActiveSQL = `
SELECT EXISTS (
    SELECT 1 FROM shared_access
    WHERE owner_id = $1 AND collaborator_id = $2 AND status = 'ACTIVE'
)`

const deleteInvitationSQL = `DELETE FROM shared_access WHERE id = $1`

// Create inserts a PENDING invitation. The email must already be normalized.
// Returns domain.ErrAlreadyExists when the owner has already invited this email.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, email string) (*domain.ShareInvitation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	row := querier.QueryRow(ctx, createInvitationSQL, id, ownerID, email)

	inv, err := scanInvitation(row)
	if err != nil {
		return nil, postgres.MapError(err, "invitation", id)
	}
	return inv, nil
}

// GetByID returns an invitation by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, invitationID uuid.UUID) (*domain.ShareInvitation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	inv, err := scanInvitation(querier.QueryRow(ctx, getInvitationSQL, invitationID))
	if err != nil {
		return nil, postgres.MapError(err, "invitation", invitationID)
	}
	return inv, nil
}

// AcceptPending transitions every PENDING invitation addressed to email into
// ACTIVE, binding the collaborator id and stamping accepted_at. The status
// guard makes the call idempotent: already-active rows are untouched and a
// run with nothing to accept returns 0.
func (r *Repo) AcceptPending(ctx context.Context, email string, collaboratorID uuid.UUID, at time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, acceptPendingSQL, email, collaboratorID, at)
	if err != nil {
		return 0, fmt.Errorf("accept pending invitations: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ListByOwner returns all grants the owner has issued, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShareInvitation, error) {
	return r.list(ctx, listByOwnerSQL, ownerID)
}

// ListActiveByCollaborator returns the ACTIVE grants where the given user is
// the collaborator. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListActiveByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]*domain.ShareInvitation, error) {
	return r.list(ctx, listActiveByCollaboratorSQL, collaboratorID)
}

// ExistsActive reports whether an ACTIVE grant from ownerID to collaboratorID exists.
func (r *Repo) ExistsActive(ctx context.Context, ownerID, collaboratorID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsActiveSQL, ownerID, collaboratorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check active grant: %w", err)
	}
	return exists, nil
}

// Delete removes an invitation regardless of status (revocation).
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, invitationID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteInvitationSQL, invitationID)
	if err != nil {
		return postgres.MapError(err, "invitation", invitationID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("invitation %s: %w", invitationID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, sql string, arg any) ([]*domain.ShareInvitation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	defer rows.Close()

	var result []*domain.ShareInvitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invitation: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.ShareInvitation{}
	}
	return result, nil
}

func scanInvitation(row pgx.Row) (*domain.ShareInvitation, error) {
	var (
		inv            domain.ShareInvitation
		status         string
		collaboratorID pgtype.UUID
		acceptedAt     pgtype.Timestamptz
	)

	err := row.Scan(
		&inv.ID, &inv.OwnerID, &inv.CollaboratorEmail, &collaboratorID,
		&status, &acceptedAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	inv.Status = domain.InvitationStatus(status)
	if collaboratorID.Valid {
		id := uuid.UUID(collaboratorID.Bytes)
		inv.CollaboratorID = &id
	}
	if acceptedAt.Valid {
		inv.AcceptedAt = &acceptedAt.Time
	}

	return &inv, nil
}
