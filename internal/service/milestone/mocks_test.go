package milestone

import (
	"context"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

var (
	_ milestoneRepo   = &milestoneRepoMock{}
	_ animalDirectory = &animalDirectoryMock{}
	_ accessChecker   = &accessCheckerMock{}
	_ badgeEvaluator  = &badgeEvaluatorMock{}
)

type milestoneRepoMock struct {
	CreateFunc       func(ctx context.Context, m *domain.Milestone) (*domain.Milestone, error)
	GetByIDFunc      func(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error)
	ListByAnimalFunc func(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error)
	DeleteFunc       func(ctx context.Context, milestoneID uuid.UUID) error

	calls struct {
		Create []*domain.Milestone
		Delete []uuid.UUID
	}
}

func (m *milestoneRepoMock) Create(ctx context.Context, ms *domain.Milestone) (*domain.Milestone, error) {
	if m.CreateFunc == nil {
		panic("milestoneRepoMock.CreateFunc: method is nil but Create was called")
	}
	m.calls.Create = append(m.calls.Create, ms)
	return m.CreateFunc(ctx, ms)
}

func (m *milestoneRepoMock) CreateCalls() []*domain.Milestone { return m.calls.Create }

func (m *milestoneRepoMock) GetByID(ctx context.Context, milestoneID uuid.UUID) (*domain.Milestone, error) {
	if m.GetByIDFunc == nil {
		panic("milestoneRepoMock.GetByIDFunc: method is nil but GetByID was called")
	}
	return m.GetByIDFunc(ctx, milestoneID)
}

func (m *milestoneRepoMock) ListByAnimal(ctx context.Context, animalID uuid.UUID) ([]*domain.Milestone, error) {
	if m.ListByAnimalFunc == nil {
		panic("milestoneRepoMock.ListByAnimalFunc: method is nil but ListByAnimal was called")
	}
	return m.ListByAnimalFunc(ctx, animalID)
}

func (m *milestoneRepoMock) Delete(ctx context.Context, milestoneID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("milestoneRepoMock.DeleteFunc: method is nil but Delete was called")
	}
	m.calls.Delete = append(m.calls.Delete, milestoneID)
	return m.DeleteFunc(ctx, milestoneID)
}

func (m *milestoneRepoMock) DeleteCalls() []uuid.UUID { return m.calls.Delete }

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
