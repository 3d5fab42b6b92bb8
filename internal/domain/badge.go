package domain

import (
	"time"

	"github.com/google/uuid"
)

// Badge is an awarded recognition for one animal, either derived by rule
// evaluation or granted manually.
type Badge struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	AnimalID    uuid.UUID
	BadgeType   BadgeType
	Title       string
	Description *string
	EarnedAt    time.Time

	// Manual is true for human-granted badges. Automatic badges are unique
	// per (animal, type) and cannot be deleted.
	Manual bool

	CreatedAt time.Time
}

// AchievementStats summarizes the goal/milestone state the badge rule
// evaluator reads for one animal.
type AchievementStats struct {
	CompletedGoalsByType  map[GoalType]int
	MilestoneCountsByType map[MilestoneType]int
}
