package badge

import (
	"fmt"

	"github.com/stallbook/stallbook-backend/internal/config"
	"github.com/stallbook/stallbook-backend/internal/domain"
)

// awardRule decides whether one automatic badge type is deserved, given the
// animal's achievement counters.
type awardRule struct {
	badgeType   domain.BadgeType
	title       string
	description string
	satisfied   func(stats domain.AchievementStats) bool
}

// buildRules assembles the automatic award rules. Adding an automatic badge
// type means adding a rule here and the constant in domain; nothing else in
// the evaluation path changes.
func buildRules(cfg config.BadgesConfig) []awardRule {
	trainings := cfg.TrainingMilestoneThreshold

	return []awardRule{
		{
			badgeType:   domain.BadgeTypeFirstCompetition,
			title:       "First Competition",
			description: "Completed a competition goal for the first time",
			satisfied: func(stats domain.AchievementStats) bool {
				return stats.CompletedGoalsByType[domain.GoalTypeCompetition] >= 1
			},
		},
		{
			badgeType:   domain.BadgeTypeHundredTrainings,
			title:       fmt.Sprintf("%d Trainings", trainings),
			description: fmt.Sprintf("Recorded %d training milestones", trainings),
			satisfied: func(stats domain.AchievementStats) bool {
				return stats.MilestoneCountsByType[domain.MilestoneTypeTraining] >= trainings
			},
		},
		{
			badgeType:   domain.BadgeTypePersonalBest,
			title:       "Personal Best",
			description: "Recorded a personal best milestone",
			satisfied: func(stats domain.AchievementStats) bool {
				return stats.MilestoneCountsByType[domain.MilestoneTypePersonalBest] >= 1
			},
		},
	}
}
