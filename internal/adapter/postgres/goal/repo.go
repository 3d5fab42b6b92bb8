// Package goal implements the Goal repository using PostgreSQL.
// It owns the goals table: CRUD, the completion transition, and persistence
// of recomputed progress for auto-calculated goals.
package goal

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/stallbook/stallbook-backend/internal/adapter/postgres"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// Repo provides goal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new goal repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const goalColumns = `id, owner_id, animal_id, title, description, target_date, goal_type,
    progress, completed, auto_calculate, completed_at, created_at, updated_at`

const createGoalSQL = `
INSERT INTO goals (id, owner_id, animal_id, title, description, target_date, goal_type, progress, auto_calculate)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + goalColumns

const getGoalSQL = `SELECT ` + goalColumns + ` FROM goals WHERE id = $1`

const listGoalsByAnimalSQL = `
SELECT ` + goalColumns + `
FROM goals
WHERE animal_id = $1
ORDER BY created_at DESC`

const setCompletionSQL = `
UPDATE goals
SET completed = $2,
    progress = CASE WHEN $2 THEN 100 ELSE progress END,
    completed_at = CASE WHEN $2 THEN $3::timestamptz ELSE NULL END,
    updated_at = now()
WHERE id = $1
RETURNING ` + goalColumns

const setProgressSQL = `
UPDATE goals
SET progress = $2, updated_at = now()
WHERE id = $1
RETURNING ` + goalColumns

const deleteGoalSQL = `DELETE FROM goals WHERE id = $1`

// Create inserts a new goal and returns the persisted row.
func (r *Repo) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := g.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	row := querier.QueryRow(ctx, createGoalSQL,
		id, g.OwnerID, g.AnimalID, g.Title, textPtr(g.Description),
		timestampPtr(g.TargetDate), g.GoalType.String(), g.Progress, g.AutoCalculate,
	)

	created, err := scanGoal(row)
	if err != nil {
		return nil, postgres.MapError(err, "goal", id)
	}
	return created, nil
}

// GetByID returns a goal by primary key.
// Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) GetByID(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGoal(querier.QueryRow(ctx, getGoalSQL, goalID))
	if err != nil {
		return nil, postgres.MapError(err, "goal", goalID)
	}
	return g, nil
}

// ListByAnimal returns all goals for an animal, newest first.
// Returns an empty slice (not nil) when the animal has no goals.
func (r *Repo) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listGoalsByAnimalSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	return scanGoals(rows)
}

// Update applies partial updates. The UPDATE statement is assembled with
// squirrel so only touched columns appear in the SET list.
// Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) Update(ctx context.Context, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b := psql.Update("goals").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": goalID}).
		Suffix("RETURNING " + goalColumns)

	if params.Title != nil {
		b = b.Set("title", *params.Title)
	}
	if params.Description != nil {
		if *params.Description == "" {
			// ptr("") means clear (set NULL in DB).
			b = b.Set("description", nil)
		} else {
			b = b.Set("description", *params.Description)
		}
	}
	if params.TargetDate != nil {
		b = b.Set("target_date", *params.TargetDate)
	}
	if params.Progress != nil {
		b = b.Set("progress", *params.Progress)
	}
	if params.AutoCalculate != nil {
		b = b.Set("auto_calculate", *params.AutoCalculate)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	g, err := scanGoal(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "goal", goalID)
	}
	return g, nil
}

// SetCompletion writes the completion flag. On completion the stored progress
// is clamped to 100 and completed_at is stamped; on un-completion the stamp
// is cleared and progress is left untouched.
// Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) SetCompletion(ctx context.Context, goalID uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGoal(querier.QueryRow(ctx, setCompletionSQL, goalID, completed, at))
	if err != nil {
		return nil, postgres.MapError(err, "goal", goalID)
	}
	return g, nil
}

// SetProgress writes a recomputed progress value.
// Returns domain.ErrNotFound if the goal does not exist.
func (r *Repo) SetProgress(ctx context.Context, goalID uuid.UUID, progress int) (*domain.Goal, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGoal(querier.QueryRow(ctx, setProgressSQL, goalID, progress))
	if err != nil {
		return nil, postgres.MapError(err, "goal", goalID)
	}
	return g, nil
}

// Delete removes a goal. Milestones and badges earned from it persist.
// Returns domain.ErrNotFound if the goal does not exist — deletion is not
// idempotent by contract.
func (r *Repo) Delete(ctx context.Context, goalID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteGoalSQL, goalID)
	if err != nil {
		return postgres.MapError(err, "goal", goalID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal %s: %w", goalID, domain.ErrNotFound)
	}
	return nil
}

const countCompletedByTypeSQL = `
SELECT goal_type, count(*)
FROM goals
WHERE animal_id = $1 AND completed
GROUP BY goal_type`

// CountCompletedByType returns completed-goal counts per type for one animal.
// Types with no completed goals are absent from the map.
func (r *Repo) CountCompletedByType(ctx context.Context, animalID uuid.UUID) (map[domain.GoalType]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countCompletedByTypeSQL, animalID)
	if err != nil {
		return nil, fmt.Errorf("count completed goals: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.GoalType]int)
	for rows.Next() {
		var (
			goalType string
			count    int
		)
		if err := rows.Scan(&goalType, &count); err != nil {
			return nil, fmt.Errorf("count completed goals: %w", err)
		}
		counts[domain.GoalType(goalType)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count completed goals: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		g           domain.Goal
		goalType    string
		description pgtype.Text
		targetDate  pgtype.Timestamptz
		completedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&g.ID, &g.OwnerID, &g.AnimalID, &g.Title, &description, &targetDate, &goalType,
		&g.Progress, &g.Completed, &g.AutoCalculate, &completedAt, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.GoalType = domain.GoalType(goalType)
	if description.Valid {
		g.Description = &description.String
	}
	if targetDate.Valid {
		g.TargetDate = &targetDate.Time
	}
	if completedAt.Valid {
		g.CompletedAt = &completedAt.Time
	}

	return &g, nil
}

func scanGoals(rows pgx.Rows) ([]*domain.Goal, error) {
	var result []*domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Goal{}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

func textPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func timestampPtr(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}
