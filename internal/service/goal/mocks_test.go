package goal

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

var (
	_ goalRepo          = &goalRepoMock{}
	_ animalDirectory   = &animalDirectoryMock{}
	_ accessChecker     = &accessCheckerMock{}
	_ milestoneRecorder = &milestoneRecorderMock{}
	_ badgeEvaluator    = &badgeEvaluatorMock{}
	_ txManager         = &txManagerMock{}
)

type goalRepoMock struct {
	CreateFunc        func(ctx context.Context, g *domain.Goal) (*domain.Goal, error)
	GetByIDFunc       func(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error)
	ListByAnimalFunc  func(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error)
	UpdateFunc        func(ctx context.Context, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error)
	SetCompletionFunc func(ctx context.Context, goalID uuid.UUID, completed bool, at time.Time) (*domain.Goal, error)
	SetProgressFunc   func(ctx context.Context, goalID uuid.UUID, progress int) (*domain.Goal, error)
	DeleteFunc        func(ctx context.Context, goalID uuid.UUID) error

	calls struct {
		Create        []*domain.Goal
		Update        []domain.GoalUpdateParams
		SetCompletion []struct {
			GoalID    uuid.UUID
			Completed bool
		}
		SetProgress []struct {
			GoalID   uuid.UUID
			Progress int
		}
		Delete []uuid.UUID
	}
}

func (m *goalRepoMock) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	if m.CreateFunc == nil {
		panic("goalRepoMock.CreateFunc: method is nil but Create was called")
	}
	m.calls.Create = append(m.calls.Create, g)
	return m.CreateFunc(ctx, g)
}

func (m *goalRepoMock) CreateCalls() []*domain.Goal { return m.calls.Create }

func (m *goalRepoMock) GetByID(ctx context.Context, goalID uuid.UUID) (*domain.Goal, error) {
	if m.GetByIDFunc == nil {
		panic("goalRepoMock.GetByIDFunc: method is nil but GetByID was called")
	}
	return m.GetByIDFunc(ctx, goalID)
}

func (m *goalRepoMock) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Goal, error) {
	if m.ListByAnimalFunc == nil {
		panic("goalRepoMock.ListByAnimalFunc: method is nil but ListByAnimal was called")
	}
	return m.ListByAnimalFunc(ctx, animalID)
}

func (m *goalRepoMock) Update(ctx context.Context, goalID uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error) {
	if m.UpdateFunc == nil {
		panic("goalRepoMock.UpdateFunc: method is nil but Update was called")
	}
	m.calls.Update = append(m.calls.Update, params)
	return m.UpdateFunc(ctx, goalID, params)
}

func (m *goalRepoMock) UpdateCalls() []domain.GoalUpdateParams { return m.calls.Update }

func (m *goalRepoMock) SetCompletion(ctx context.Context, goalID uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
	if m.SetCompletionFunc == nil {
		panic("goalRepoMock.SetCompletionFunc: method is nil but SetCompletion was called")
	}
	m.calls.SetCompletion = append(m.calls.SetCompletion, struct {
		GoalID    uuid.UUID
		Completed bool
	}{goalID, completed})
	return m.SetCompletionFunc(ctx, goalID, completed, at)
}

func (m *goalRepoMock) SetCompletionCalls() []struct {
	GoalID    uuid.UUID
	Completed bool
} {
	return m.calls.SetCompletion
}

func (m *goalRepoMock) SetProgress(ctx context.Context, goalID uuid.UUID, progress int) (*domain.Goal, error) {
	if m.SetProgressFunc == nil {
		panic("goalRepoMock.SetProgressFunc: method is nil but SetProgress was called")
	}
	m.calls.SetProgress = append(m.calls.SetProgress, struct {
		GoalID   uuid.UUID
		Progress int
	}{goalID, progress})
	return m.SetProgressFunc(ctx, goalID, progress)
}

func (m *goalRepoMock) SetProgressCalls() []struct {
	GoalID   uuid.UUID
	Progress int
} {
	return m.calls.SetProgress
}

func (m *goalRepoMock) Delete(ctx context.Context, goalID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("goalRepoMock.DeleteFunc: method is nil but Delete was called")
	}
	m.calls.Delete = append(m.calls.Delete, goalID)
	return m.DeleteFunc(ctx, goalID)
}

func (m *goalRepoMock) DeleteCalls() []uuid.UUID { return m.calls.Delete }

type animalDirectoryMock struct {
	GetOwnerIDFunc func(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error)
}

func (m *animalDirectoryMock) GetOwnerID(ctx context.Context, animalID uuid.UUID) (uuid.UUID, error) {
	if m.GetOwnerIDFunc == nil {
		panic("animalDirectoryMock.GetOwnerIDFunc: method is nil but GetOwnerID was called")
	}
	return m.GetOwnerIDFunc(ctx, animalID)
}

type accessCheckerMock struct {
	CanAccessFunc func(ctx context.Context, ownerID, userID uuid.UUID) (bool, error)
}

func (m *accessCheckerMock) CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error) {
	if m.CanAccessFunc == nil {
		panic("accessCheckerMock.CanAccessFunc: method is nil but CanAccess was called")
	}
	return m.CanAccessFunc(ctx, ownerID, userID)
}

type milestoneRecorderMock struct {
	RecordFromGoalCompletionFunc func(ctx context.Context, g *domain.Goal) (*domain.Milestone, error)

	calls struct {
		RecordFromGoalCompletion []*domain.Goal
	}
}

func (m *milestoneRecorderMock) RecordFromGoalCompletion(ctx context.Context, g *domain.Goal) (*domain.Milestone, error) {
	if m.RecordFromGoalCompletionFunc == nil {
		panic("milestoneRecorderMock.RecordFromGoalCompletionFunc: method is nil but RecordFromGoalCompletion was called")
	}
	m.calls.RecordFromGoalCompletion = append(m.calls.RecordFromGoalCompletion, g)
	return m.RecordFromGoalCompletionFunc(ctx, g)
}

func (m *milestoneRecorderMock) RecordFromGoalCompletionCalls() []*domain.Goal {
	return m.calls.RecordFromGoalCompletion
}

type badgeEvaluatorMock struct {
	EvaluateAutomaticBadgesFunc func(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)

	calls struct {
		EvaluateAutomaticBadges []uuid.UUID
	}
}

func (m *badgeEvaluatorMock) EvaluateAutomaticBadges(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error) {
	if m.EvaluateAutomaticBadgesFunc == nil {
		panic("badgeEvaluatorMock.EvaluateAutomaticBadgesFunc: method is nil but EvaluateAutomaticBadges was called")
	}
	m.calls.EvaluateAutomaticBadges = append(m.calls.EvaluateAutomaticBadges, animalID)
	return m.EvaluateAutomaticBadgesFunc(ctx, animalID)
}

func (m *badgeEvaluatorMock) EvaluateAutomaticBadgesCalls() []uuid.UUID {
	return m.calls.EvaluateAutomaticBadges
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but RunInTx was called")
	}
	return m.RunInTxFunc(ctx, fn)
}
