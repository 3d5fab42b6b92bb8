// Package animal implements animal profile management. Profiles are the
// scope goals, milestones, and badges attach to.
package animal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type animalRepo interface {
	Create(ctx context.Context, a *domain.Animal) (*domain.Animal, error)
	GetByID(ctx context.Context, animalID uuid.UUID) (*domain.Animal, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error)
}

type accessChecker interface {
	CanAccess(ctx context.Context, ownerID, userID uuid.UUID) (bool, error)
}

// Service provides animal profile operations.
type Service struct {
	animals animalRepo
	access  accessChecker
	log     *slog.Logger
}

// NewService creates a new Animal service.
func NewService(log *slog.Logger, animals animalRepo, access accessChecker) *Service {
	return &Service{
		animals: animals,
		access:  access,
		log:     log.With("service", "animal"),
	}
}

// CreateAnimalInput holds the parameters for creating an animal profile.
type CreateAnimalInput struct {
	Name       string
	Discipline *string
}

// Validate checks all fields and collects all errors.
func (i CreateAnimalInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateAnimal registers a profile on the caller's own account.
// Collaborators add animals to their own account, never to a shared one.
func (s *Service) CreateAnimal(ctx context.Context, input CreateAnimalInput) (*domain.Animal, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.animals.Create(ctx, &domain.Animal{
		OwnerID:    ownerID,
		Name:       strings.TrimSpace(input.Name),
		Discipline: input.Discipline,
	})
	if err != nil {
		return nil, fmt.Errorf("create animal: %w", err)
	}

	s.log.InfoContext(ctx, "animal created",
		slog.String("animal_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
	)

	return created, nil
}

// GetAnimal returns a profile the caller may see.
func (s *Service) GetAnimal(ctx context.Context, animalID uuid.UUID) (*domain.Animal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if animalID == uuid.Nil {
		return nil, domain.NewValidationError("animal_id", "required")
	}

	a, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("get animal: %w", err)
	}

	allowed, err := s.access.CanAccess(ctx, a.OwnerID, userID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return a, nil
}

// ListAnimals returns the animals of ownerID, which may be the caller's own
// account or one shared with them.
func (s *Service) ListAnimals(ctx context.Context, ownerID uuid.UUID) ([]*domain.Animal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if ownerID == uuid.Nil {
		ownerID = userID
	}

	allowed, err := s.access.CanAccess(ctx, ownerID, userID)
	if err != nil {
		return nil, fmt.Errorf("check access: %w", err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	animals, err := s.animals.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return animals, nil
}
