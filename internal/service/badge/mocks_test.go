package badge

import (
	"context"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

var (
	_ badgeRepo        = &badgeRepoMock{}
	_ goalCounter      = &goalCounterMock{}
	_ milestoneCounter = &milestoneCounterMock{}
	_ animalDirectory  = &animalDirectoryMock{}
	_ accessChecker    = &accessCheckerMock{}
)

type badgeRepoMock struct {
	CreateManualFunc       func(ctx context.Context, b *domain.Badge) (*domain.Badge, error)
	CreateAutomaticFunc    func(ctx context.Context, b *domain.Badge) (*domain.Badge, error)
	GetByIDFunc            func(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error)
	ListByAnimalFunc       func(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error)
	ListAutomaticTypesFunc func(ctx context.Context, animalID uuid.UUID) (map[domain.BadgeType]bool, error)
	DeleteFunc             func(ctx context.Context, badgeID uuid.UUID) error

	calls struct {
		CreateManual    []*domain.Badge
		CreateAutomatic []*domain.Badge
		Delete          []uuid.UUID
	}
}

func (m *badgeRepoMock) CreateManual(ctx context.Context, b *domain.Badge) (*domain.Badge, error) {
	if m.CreateManualFunc == nil {
		panic("badgeRepoMock.CreateManualFunc: method is nil but CreateManual was called")
	}
	m.calls.CreateManual = append(m.calls.CreateManual, b)
	return m.CreateManualFunc(ctx, b)
}

func (m *badgeRepoMock) CreateManualCalls() []*domain.Badge { return m.calls.CreateManual }

func (m *badgeRepoMock) CreateAutomatic(ctx context.Context, b *domain.Badge) (*domain.Badge, error) {
	if m.CreateAutomaticFunc == nil {
		panic("badgeRepoMock.CreateAutomaticFunc: method is nil but CreateAutomatic was called")
	}
	m.calls.CreateAutomatic = append(m.calls.CreateAutomatic, b)
	return m.CreateAutomaticFunc(ctx, b)
}

func (m *badgeRepoMock) CreateAutomaticCalls() []*domain.Badge { return m.calls.CreateAutomatic }

func (m *badgeRepoMock) GetByID(ctx context.Context, badgeID uuid.UUID) (*domain.Badge, error) {
	if m.GetByIDFunc == nil {
		panic("badgeRepoMock.GetByIDFunc: method is nil but GetByID was called")
	}
	return m.GetByIDFunc(ctx, badgeID)
}

func (m *badgeRepoMock) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Badge, error) {
	if m.ListByAnimalFunc == nil {
		panic("badgeRepoMock.ListByAnimalFunc: method is nil but ListByAnimal was called")
	}
	return m.ListByAnimalFunc(ctx, animalID)
}

func (m *badgeRepoMock) ListAutomaticTypes(ctx context.Context, animalID uuid.UUID) (map[domain.BadgeType]bool, error) {
	if m.ListAutomaticTypesFunc == nil {
		panic("badgeRepoMock.ListAutomaticTypesFunc: method is nil but ListAutomaticTypes was called")
	}
	return m.ListAutomaticTypesFunc(ctx, animalID)
}

func (m *badgeRepoMock) Delete(ctx context.Context, badgeID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("badgeRepoMock.DeleteFunc: method is nil but Delete was called")
	}
	m.calls.Delete = append(m.calls.Delete, badgeID)
	return m.DeleteFunc(ctx, badgeID)
}

func (m *badgeRepoMock) DeleteCalls() []uuid.UUID { return m.calls.Delete }

type goalCounterMock struct {
	CountCompletedByTypeFunc func(ctx context.Context, animalID uuid.UUID) (map[domain.GoalType]int, error)
}

func (m *goalCounterMock) CountCompletedByType(ctx context.Context, animalID uuid.UUID) (map[domain.GoalType]int, error) {
	if m.CountCompletedByTypeFunc == nil {
		panic("goalCounterMock.CountCompletedByTypeFunc: method is nil but CountCompletedByType was called")
	}
	return m.CountCompletedByTypeFunc(ctx, animalID)
}

type milestoneCounterMock struct {
	CountByTypeFunc func(ctx context.Context, animalID uuid.UUID) (map[domain.MilestoneType]int, error)
}

func (m *milestoneCounterMock) CountByType(ctx context.Context, animalID uuid.UUID) (map[domain.MilestoneType]int, error) {
	if m.CountByTypeFunc == nil {
		panic("milestoneCounterMock.CountByTypeFunc: method is nil but CountByType was called")
	}
	return m.CountByTypeFunc(ctx, animalID)
}

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
