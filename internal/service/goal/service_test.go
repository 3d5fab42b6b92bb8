package goal

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stallbook/stallbook-backend/internal/domain"
	"github.com/stallbook/stallbook-backend/pkg/ctxutil"
)

type testMocks struct {
	goals      *goalRepoMock
	animals    *animalDirectoryMock
	access     *accessCheckerMock
	milestones *milestoneRecorderMock
	badges     *badgeEvaluatorMock
	tx         *txManagerMock
}

// defaultMocks wires an owner whose animal resolves and whose access checks
// pass, with a pass-through transaction.
func defaultMocks(ownerID uuid.UUID) *testMocks {
	return &testMocks{
		goals: &goalRepoMock{},
		animals: &animalDirectoryMock{
			GetOwnerIDFunc: func(_ context.Context, _ uuid.UUID) (uuid.UUID, error) {
				return ownerID, nil
			},
		},
		access: &accessCheckerMock{
			CanAccessFunc: func(_ context.Context, _, _ uuid.UUID) (bool, error) {
				return true, nil
			},
		},
		milestones: &milestoneRecorderMock{
			RecordFromGoalCompletionFunc: func(_ context.Context, g *domain.Goal) (*domain.Milestone, error) {
				return &domain.Milestone{ID: uuid.New(), AnimalID: g.AnimalID}, nil
			},
		},
		badges: &badgeEvaluatorMock{
			EvaluateAutomaticBadgesFunc: func(_ context.Context, _ uuid.UUID) ([]*domain.Badge, error) {
				return nil, nil
			},
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		},
	}
}

func newTestService(t *testing.T, m *testMocks) *Service {
	t.Helper()
	return NewService(slog.Default(), m.goals, m.animals, m.access, m.milestones, m.badges, m.tx)
}

// --- CreateGoal ---

func TestCreateGoal_Success(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	animalID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.CreateFunc = func(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
		created := *g
		created.ID = uuid.New()
		created.CreatedAt = time.Now()
		return &created, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	progress := 25
	created, err := svc.CreateGoal(ctx, CreateGoalInput{
		AnimalID: animalID,
		Title:    "  Tävla på L-nivå  ",
		GoalType: domain.GoalTypeCompetition,
		Progress: &progress,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Title != "Tävla på L-nivå" {
		t.Errorf("title should be trimmed, got %q", created.Title)
	}
	if created.OwnerID != ownerID {
		t.Errorf("owner: got %s, want %s", created.OwnerID, ownerID)
	}
	if created.Progress != 25 {
		t.Errorf("progress: got %d, want 25", created.Progress)
	}
}

func TestCreateGoal_AutoCalculateIgnoresInitialProgress(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.CreateFunc = func(_ context.Context, g *domain.Goal) (*domain.Goal, error) {
		return g, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	progress := 60
	created, err := svc.CreateGoal(ctx, CreateGoalInput{
		AnimalID:      uuid.New(),
		Title:         "Ride 100 sessions",
		GoalType:      domain.GoalTypeTraining,
		AutoCalculate: true,
		Progress:      &progress,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Progress != 0 {
		t.Errorf("auto-calculated goal must start at 0, got %d", created.Progress)
	}
}

func TestCreateGoal_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, defaultMocks(uuid.New()))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	badProgress := 150
	tests := []struct {
		name  string
		input CreateGoalInput
	}{
		{"empty title", CreateGoalInput{AnimalID: uuid.New(), Title: "   ", GoalType: domain.GoalTypeTraining}},
		{"invalid type", CreateGoalInput{AnimalID: uuid.New(), Title: "x", GoalType: domain.GoalType("RODEO")}},
		{"missing animal", CreateGoalInput{Title: "x", GoalType: domain.GoalTypeTraining}},
		{"progress out of range", CreateGoalInput{AnimalID: uuid.New(), Title: "x", GoalType: domain.GoalTypeTraining, Progress: &badProgress}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateGoal(ctx, tt.input)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestCreateGoal_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, defaultMocks(uuid.New()))
	_, err := svc.CreateGoal(context.Background(), CreateGoalInput{
		AnimalID: uuid.New(), Title: "x", GoalType: domain.GoalTypeTraining,
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCreateGoal_NoAccess(t *testing.T) {
	t.Parallel()

	m := defaultMocks(uuid.New())
	m.access.CanAccessFunc = func(_ context.Context, _, _ uuid.UUID) (bool, error) { return false, nil }
	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.CreateGoal(ctx, CreateGoalInput{
		AnimalID: uuid.New(), Title: "x", GoalType: domain.GoalTypeTraining,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if len(m.goals.CreateCalls()) != 0 {
		t.Error("Create must not be called without access")
	}
}

// --- UpdateGoal ---

func TestUpdateGoal_RejectsProgressOnAutoCalculated(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	goalID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	progress := 80
	_, err := svc.UpdateGoal(ctx, UpdateGoalInput{GoalID: goalID, Progress: &progress})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(m.goals.UpdateCalls()) != 0 {
		t.Error("Update must not be called for a rejected edit")
	}
}

func TestUpdateGoal_ProgressAllowedWhenSwitchingToManual(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true}, nil
	}
	m.goals.UpdateFunc = func(_ context.Context, id uuid.UUID, params domain.GoalUpdateParams) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Progress: *params.Progress}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	progress := 80
	manual := false
	updated, err := svc.UpdateGoal(ctx, UpdateGoalInput{
		GoalID: uuid.New(), Progress: &progress, AutoCalculate: &manual,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Progress != 80 {
		t.Errorf("progress: got %d, want 80", updated.Progress)
	}
}

func TestUpdateGoal_NoFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, defaultMocks(uuid.New()))
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := svc.UpdateGoal(ctx, UpdateGoalInput{GoalID: uuid.New()})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestUpdateGoal_NotFound(t *testing.T) {
	t.Parallel()

	m := defaultMocks(uuid.New())
	m.goals.GetByIDFunc = func(_ context.Context, _ uuid.UUID) (*domain.Goal, error) {
		return nil, domain.ErrNotFound
	}
	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	title := "x"
	_, err := svc.UpdateGoal(ctx, UpdateGoalInput{GoalID: uuid.New(), Title: &title})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// --- ToggleCompletion ---

func TestToggleCompletion_Complete(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	goalID := uuid.New()
	animalID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{
			ID: id, OwnerID: ownerID, AnimalID: animalID,
			GoalType: domain.GoalTypeCompetition, Progress: 40,
		}, nil
	}
	m.goals.SetCompletionFunc = func(_ context.Context, id uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
		return &domain.Goal{
			ID: id, OwnerID: ownerID, AnimalID: animalID,
			GoalType: domain.GoalTypeCompetition,
			Progress: 100, Completed: completed, CompletedAt: &at,
		}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.ToggleCompletion(ctx, ToggleCompletionInput{GoalID: goalID, CurrentlyCompleted: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !updated.Completed {
		t.Error("goal should be completed")
	}
	if updated.Progress != 100 {
		t.Errorf("progress: got %d, want 100", updated.Progress)
	}
	if len(m.milestones.RecordFromGoalCompletionCalls()) != 1 {
		t.Errorf("milestone calls: got %d, want 1", len(m.milestones.RecordFromGoalCompletionCalls()))
	}
	if len(m.badges.EvaluateAutomaticBadgesCalls()) != 1 {
		t.Errorf("badge evaluation calls: got %d, want 1", len(m.badges.EvaluateAutomaticBadgesCalls()))
	}
}

func TestToggleCompletion_Reopen(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: true, Progress: 100}, nil
	}
	m.goals.SetCompletionFunc = func(_ context.Context, id uuid.UUID, completed bool, _ time.Time) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: completed, Progress: 100}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.ToggleCompletion(ctx, ToggleCompletionInput{GoalID: uuid.New(), CurrentlyCompleted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Completed {
		t.Error("goal should be reopened")
	}
	if len(m.milestones.RecordFromGoalCompletionCalls()) != 0 {
		t.Error("reopening must not record a milestone")
	}
	if len(m.badges.EvaluateAutomaticBadgesCalls()) != 0 {
		t.Error("reopening must not trigger badge evaluation")
	}
}

func TestToggleCompletion_StaleRepeatDoesNotDuplicateMilestone(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	// The goal is already completed; a stale client still observed it as
	// incomplete and toggles again.
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: true, Progress: 100}, nil
	}
	m.goals.SetCompletionFunc = func(_ context.Context, id uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: completed, Progress: 100, CompletedAt: &at}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	_, err := svc.ToggleCompletion(ctx, ToggleCompletionInput{GoalID: uuid.New(), CurrentlyCompleted: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.milestones.RecordFromGoalCompletionCalls()) != 0 {
		t.Error("repeat completion must not record another milestone")
	}
}

func TestToggleCompletion_BadgeEvaluationFailureDoesNotFail(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID}, nil
	}
	m.goals.SetCompletionFunc = func(_ context.Context, id uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: completed, Progress: 100}, nil
	}
	m.badges.EvaluateAutomaticBadgesFunc = func(_ context.Context, _ uuid.UUID) ([]*domain.Badge, error) {
		return nil, errors.New("store unavailable")
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.ToggleCompletion(ctx, ToggleCompletionInput{GoalID: uuid.New(), CurrentlyCompleted: false})
	if err != nil {
		t.Fatalf("evaluation failure must not fail the toggle: %v", err)
	}
	if !updated.Completed {
		t.Error("completion should have been persisted")
	}
}

func TestToggleCompletion_MilestoneFailureRollsBack(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID}, nil
	}
	m.goals.SetCompletionFunc = func(_ context.Context, id uuid.UUID, completed bool, at time.Time) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, Completed: completed}, nil
	}
	m.milestones.RecordFromGoalCompletionFunc = func(_ context.Context, _ *domain.Goal) (*domain.Milestone, error) {
		return nil, errors.New("insert failed")
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	_, err := svc.ToggleCompletion(ctx, ToggleCompletionInput{GoalID: uuid.New(), CurrentlyCompleted: false})
	if err == nil {
		t.Fatal("milestone failure inside the transaction must fail the toggle")
	}
	if len(m.badges.EvaluateAutomaticBadgesCalls()) != 0 {
		t.Error("badges must not be evaluated after a failed transaction")
	}
}

// --- RecomputeProgress ---

func TestRecomputeProgress_AutoCalculated(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true, Progress: 10}, nil
	}
	m.goals.SetProgressFunc = func(_ context.Context, id uuid.UUID, progress int) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true, Progress: progress}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.RecomputeProgress(ctx, RecomputeProgressInput{
		GoalID:   uuid.New(),
		Snapshot: domain.ActivitySnapshot{CompletedCount: 1, TargetCount: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Progress != 33 {
		t.Errorf("progress: got %d, want 33", updated.Progress)
	}
}

func TestRecomputeProgress_ManualGoalIsNoOp(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: false, Progress: 55}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.RecomputeProgress(ctx, RecomputeProgressInput{
		GoalID:   uuid.New(),
		Snapshot: domain.ActivitySnapshot{CompletedCount: 10, TargetCount: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Progress != 55 {
		t.Errorf("manual goal progress must be untouched, got %d", updated.Progress)
	}
	if len(m.goals.SetProgressCalls()) != 0 {
		t.Error("SetProgress must not be called for a manual goal")
	}
}

func TestRecomputeProgress_OvershootClamps(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true}, nil
	}
	m.goals.SetProgressFunc = func(_ context.Context, id uuid.UUID, progress int) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID, AutoCalculate: true, Progress: progress}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	updated, err := svc.RecomputeProgress(ctx, RecomputeProgressInput{
		GoalID:   uuid.New(),
		Snapshot: domain.ActivitySnapshot{CompletedCount: 12, TargetCount: 10},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Progress != 100 {
		t.Errorf("progress should clamp to 100, got %d", updated.Progress)
	}
}

// --- DeleteGoal ---

func TestDeleteGoal_Success(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	m := defaultMocks(ownerID)
	m.goals.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Goal, error) {
		return &domain.Goal{ID: id, OwnerID: ownerID}, nil
	}
	m.goals.DeleteFunc = func(_ context.Context, _ uuid.UUID) error { return nil }

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	if err := svc.DeleteGoal(ctx, DeleteGoalInput{GoalID: uuid.New()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.goals.DeleteCalls()) != 1 {
		t.Errorf("Delete calls: got %d, want 1", len(m.goals.DeleteCalls()))
	}
}

func TestDeleteGoal_NotFound(t *testing.T) {
	t.Parallel()

	m := defaultMocks(uuid.New())
	m.goals.GetByIDFunc = func(_ context.Context, _ uuid.UUID) (*domain.Goal, error) {
		return nil, domain.ErrNotFound
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	err := svc.DeleteGoal(ctx, DeleteGoalInput{GoalID: uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// --- ListGoals ---

func TestListGoals_CollaboratorAllowed(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	collaboratorID := uuid.New()
	animalID := uuid.New()
	m := defaultMocks(ownerID)
	m.access.CanAccessFunc = func(_ context.Context, owner, user uuid.UUID) (bool, error) {
		return owner == ownerID && user == collaboratorID, nil
	}
	m.goals.ListByAnimalFunc = func(_ context.Context, _ uuid.UUID) ([]*domain.Goal, error) {
		return []*domain.Goal{{ID: uuid.New(), AnimalID: animalID}}, nil
	}

	svc := newTestService(t, m)
	ctx := ctxutil.WithUserID(context.Background(), collaboratorID)

	goals, err := svc.ListGoals(ctx, animalID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("goals: got %d, want 1", len(goals))
	}
}
