package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is a long-running training or competition objective for one animal.
type Goal struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	AnimalID    uuid.UUID
	Title       string
	Description *string
	TargetDate  *time.Time
	GoalType    GoalType

	// Progress is a percentage in [0,100]. When AutoCalculate is true it is
	// derived from activity snapshots and direct edits are rejected.
	Progress      int
	Completed     bool
	AutoCalculate bool

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GoalUpdateParams carries partial updates for a goal. Nil means "leave as is".
// A Description of ptr("") clears the stored description.
type GoalUpdateParams struct {
	Title         *string
	Description   *string
	TargetDate    *time.Time
	Progress      *int
	AutoCalculate *bool
}

// ActivitySnapshot is the numeric shape an activity-log collaborator feeds
// into progress recomputation: how many linked activities are done out of
// how many the goal targets.
type ActivitySnapshot struct {
	CompletedCount int
	TargetCount    int
}

// ProgressPercent derives a clamped progress percentage from the snapshot.
// A non-positive target yields 0 rather than dividing by zero.
func (s ActivitySnapshot) ProgressPercent() int {
	if s.TargetCount <= 0 {
		return 0
	}
	p := (s.CompletedCount*100 + s.TargetCount/2) / s.TargetCount
	return ClampProgress(p)
}

// ClampProgress restricts a progress value to [0,100].
func ClampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
