package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique normalized email.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAnimal creates an animal profile owned by ownerID.
// Returns a filled domain.Animal.
func SeedAnimal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Animal {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	discipline := "dressage"
	animal := domain.Animal{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "Horse " + suffix,
		Discipline: &discipline,
		CreatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO animals (id, owner_id, name, discipline, created_at) VALUES ($1, $2, $3, $4, $5)`,
		animal.ID, animal.OwnerID, animal.Name, animal.Discipline, animal.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnimal insert animal: %v", err)
	}

	return animal
}

// SeedScope creates an owner user plus one animal under it, the scope most
// repository tests operate on.
func SeedScope(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.Animal) {
	t.Helper()
	owner := SeedUser(t, pool)
	animal := SeedAnimal(t, pool, owner.ID)
	return owner, animal
}
