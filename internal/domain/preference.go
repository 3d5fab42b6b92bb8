package domain

import (
	"time"

	"github.com/google/uuid"
)

// WidgetPreference is a per-user visibility flag for one dashboard widget.
// Rows are created on first toggle (upsert) and never deleted; preferences
// for retired widget ids are simply ignored on read.
type WidgetPreference struct {
	UserID       uuid.UUID
	WidgetID     string
	Visible      bool
	DisplayOrder int
	UpdatedAt    time.Time
}

// User mirrors the identity collaborator's account record. Email is stored
// normalized (see NormalizeEmail) so invitation matching is a plain equality.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// Animal is a profile that goals, milestones, and badges are scoped to.
type Animal struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Discipline *string
	CreatedAt  time.Time
}
