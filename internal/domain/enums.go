package domain

// GoalType categorizes what a training goal is working toward.
type GoalType string

const (
	GoalTypeCompetition GoalType = "COMPETITION"
	GoalTypeTraining    GoalType = "TRAINING"
	GoalTypeHealth      GoalType = "HEALTH"
	GoalTypeCustom      GoalType = "CUSTOM"
)

func (t GoalType) String() string { return string(t) }

func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeCompetition, GoalTypeTraining, GoalTypeHealth, GoalTypeCustom:
		return true
	}
	return false
}

// MilestoneType categorizes a recorded achievement.
type MilestoneType string

const (
	MilestoneTypeCompetition  MilestoneType = "COMPETITION"
	MilestoneTypeTraining     MilestoneType = "TRAINING"
	MilestoneTypeHealth       MilestoneType = "HEALTH"
	MilestoneTypePersonalBest MilestoneType = "PERSONAL_BEST"
	MilestoneTypeCustom       MilestoneType = "CUSTOM"
)

func (t MilestoneType) String() string { return string(t) }

func (t MilestoneType) IsValid() bool {
	switch t {
	case MilestoneTypeCompetition, MilestoneTypeTraining, MilestoneTypeHealth,
		MilestoneTypePersonalBest, MilestoneTypeCustom:
		return true
	}
	return false
}

// MilestoneTypeForGoal maps a completed goal's type to the milestone type
// recorded for it.
func MilestoneTypeForGoal(t GoalType) MilestoneType {
	switch t {
	case GoalTypeCompetition:
		return MilestoneTypeCompetition
	case GoalTypeTraining:
		return MilestoneTypeTraining
	case GoalTypeHealth:
		return MilestoneTypeHealth
	default:
		return MilestoneTypeCustom
	}
}

// BadgeType identifies an awarded recognition. The presentation layer maps
// each type to an icon and color; adding a type here is a compile-time
// checked change.
type BadgeType string

const (
	// Automatic types, awarded by rule evaluation at most once per animal.
	BadgeTypeFirstCompetition BadgeType = "FIRST_COMPETITION"
	BadgeTypeHundredTrainings BadgeType = "HUNDRED_TRAININGS"
	BadgeTypePersonalBest     BadgeType = "PERSONAL_BEST"

	// Manual-grant types.
	BadgeTypeTrainerChoice      BadgeType = "TRAINER_CHOICE"
	BadgeTypeSpecialAchievement BadgeType = "SPECIAL_ACHIEVEMENT"
)

func (t BadgeType) String() string { return string(t) }

func (t BadgeType) IsValid() bool {
	switch t {
	case BadgeTypeFirstCompetition, BadgeTypeHundredTrainings, BadgeTypePersonalBest,
		BadgeTypeTrainerChoice, BadgeTypeSpecialAchievement:
		return true
	}
	return false
}

// AutomaticBadgeTypes is the closed set of types the rule evaluator may award.
func AutomaticBadgeTypes() []BadgeType {
	return []BadgeType{
		BadgeTypeFirstCompetition,
		BadgeTypeHundredTrainings,
		BadgeTypePersonalBest,
	}
}

// InvitationStatus is the lifecycle state of a shared-access invitation.
type InvitationStatus string

const (
	InvitationStatusPending InvitationStatus = "PENDING"
	InvitationStatusActive  InvitationStatus = "ACTIVE"
)

func (s InvitationStatus) String() string { return string(s) }

func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusActive:
		return true
	}
	return false
}
