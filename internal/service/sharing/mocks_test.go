package sharing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
)

var _ invitationRepo = &invitationRepoMock{}

type invitationRepoMock struct {
	CreateFunc                   func(ctx context.Context, ownerID uuid.UUID, email string) (*domain.ShareInvitation, error)
	GetByIDFunc                  func(ctx context.Context, invitationID uuid.UUID) (*domain.ShareInvitation, error)
	AcceptPendingFunc            func(ctx context.Context, email string, collaboratorID uuid.UUID, at time.Time) (int, error)
	ListByOwnerFunc              func(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShareInvitation, error)
	ListActiveByCollaboratorFunc func(ctx context.Context, collaboratorID uuid.UUID) ([]*domain.ShareInvitation, error)
	ExistsActiveFunc             func(ctx context.Context, ownerID, collaboratorID uuid.UUID) (bool, error)
	DeleteFunc                   func(ctx context.Context, invitationID uuid.UUID) error

	calls struct {
		Create []struct {
			OwnerID uuid.UUID
			Email   string
		}
		AcceptPending []struct {
			Email          string
			CollaboratorID uuid.UUID
		}
		Delete []struct{ InvitationID uuid.UUID }
	}
}

func (m *invitationRepoMock) Create(ctx context.Context, ownerID uuid.UUID, email string) (*domain.ShareInvitation, error) {
	if m.CreateFunc == nil {
		panic("invitationRepoMock.CreateFunc: method is nil but Create was called")
	}
	m.calls.Create = append(m.calls.Create, struct {
		OwnerID uuid.UUID
		Email   string
	}{ownerID, email})
	return m.CreateFunc(ctx, ownerID, email)
}

func (m *invitationRepoMock) CreateCalls() []struct {
	OwnerID uuid.UUID
	Email   string
} {
	return m.calls.Create
}

func (m *invitationRepoMock) GetByID(ctx context.Context, invitationID uuid.UUID) (*domain.ShareInvitation, error) {
	if m.GetByIDFunc == nil {
		panic("invitationRepoMock.GetByIDFunc: method is nil but GetByID was called")
	}
	return m.GetByIDFunc(ctx, invitationID)
}

func (m *invitationRepoMock) AcceptPending(ctx context.Context, email string, collaboratorID uuid.UUID, at time.Time) (int, error) {
	if m.AcceptPendingFunc == nil {
		panic("invitationRepoMock.AcceptPendingFunc: method is nil but AcceptPending was called")
	}
	m.calls.AcceptPending = append(m.calls.AcceptPending, struct {
		Email          string
		CollaboratorID uuid.UUID
	}{email, collaboratorID})
	return m.AcceptPendingFunc(ctx, email, collaboratorID, at)
}

func (m *invitationRepoMock) AcceptPendingCalls() []struct {
	Email          string
	CollaboratorID uuid.UUID
} {
	return m.calls.AcceptPending
}

func (m *invitationRepoMock) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.ShareInvitation, error) {
	if m.ListByOwnerFunc == nil {
		panic("invitationRepoMock.ListByOwnerFunc: method is nil but ListByOwner was called")
	}
	return m.ListByOwnerFunc(ctx, ownerID)
}

func (m *invitationRepoMock) ListActiveByCollaborator(ctx context.Context, collaboratorID uuid.UUID) ([]*domain.ShareInvitation, error) {
	if m.ListActiveByCollaboratorFunc == nil {
		panic("invitationRepoMock.ListActiveByCollaboratorFunc: method is nil but ListActiveByCollaborator was called")
	}
	return m.ListActiveByCollaboratorFunc(ctx, collaboratorID)
}

func (m *invitationRepoMock) ExistsActive(ctx context.Context, ownerID, collaboratorID uuid.UUID) (bool, error) {
	if m.ExistsActiveFunc == nil {
		panic("invitationRepoMock.ExistsActiveFunc: method is nil but ExistsActive was called")
	}
	return m.ExistsActiveFunc(ctx, ownerID, collaboratorID)
}

func (m *invitationRepoMock) Delete(ctx context.Context, invitationID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("invitationRepoMock.DeleteFunc: method is nil but Delete was called")
	}
	m.calls.Delete = append(m.calls.Delete, struct{ InvitationID uuid.UUID }{invitationID})
	return m.DeleteFunc(ctx, invitationID)
}

func (m *invitationRepoMock) DeleteCalls() []struct{ InvitationID uuid.UUID } {
	return m.calls.Delete
}
