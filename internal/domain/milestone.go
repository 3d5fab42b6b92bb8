package domain

import (
	"time"

	"github.com/google/uuid"
)

// Milestone is an immutable record of an achieved event for one animal.
// There is no update path: once recorded, only deletion is possible.
type Milestone struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	AnimalID      uuid.UUID
	Title         string
	Description   *string
	AchievedAt    time.Time
	MilestoneType MilestoneType
	Icon          *string
	CreatedAt     time.Time
}
