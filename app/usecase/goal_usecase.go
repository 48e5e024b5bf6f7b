package usecase

import (
	"context"

	"github.com/google/uuid"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// GoalUseCase implements goal business logic. Every operation is scoped
// to the calling user; goals owned by someone else yield ErrForbidden
// so a caller can tell foreign from missing.
type GoalUseCase struct {
	goalRepo port.GoalRepository
}

// NewGoalUseCase creates a new GoalUseCase instance
func NewGoalUseCase(goalRepo port.GoalRepository) *GoalUseCase {
	return &GoalUseCase{
		goalRepo: goalRepo,
	}
}

// List returns the caller's goals.
func (uc *GoalUseCase) List(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	return uc.goalRepo.ListByUser(ctx, userID)
}

// Get returns one of the caller's goals.
func (uc *GoalUseCase) Get(ctx context.Context, userID uuid.UUID, goalID int64) (*domain.Goal, error) {
	return uc.getOwned(ctx, userID, goalID)
}

// Create stores a new goal for the caller. Inline tasks get positional
// ids and the derived progress/status fields are computed before the
// goal is persisted.
func (uc *GoalUseCase) Create(ctx context.Context, userID uuid.UUID, title string, patch domain.GoalPatch) (*domain.Goal, error) {
	goal, err := domain.NewGoal(userID, title, nil)
	if err != nil {
		return nil, err
	}

	// Title came through NewGoal already; the patch fills in the rest.
	patch.Title = nil
	goal.Apply(patch)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Update merges a partial update into one of the caller's goals. A new
// task list replaces the old one wholesale.
func (uc *GoalUseCase) Update(ctx context.Context, userID uuid.UUID, goalID int64, patch domain.GoalPatch) (*domain.Goal, error) {
	if patch.Title != nil {
		if *patch.Title == "" {
			return nil, domain.NewValidationError("title", *patch.Title, "title must not be empty")
		}
		if len(*patch.Title) > 255 {
			return nil, domain.NewValidationError("title", *patch.Title, "title must be at most 255 characters")
		}
	}

	goal, err := uc.getOwned(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.Apply(patch)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete removes one of the caller's goals.
func (uc *GoalUseCase) Delete(ctx context.Context, userID uuid.UUID, goalID int64) error {
	if _, err := uc.getOwned(ctx, userID, goalID); err != nil {
		return err
	}
	return uc.goalRepo.Delete(ctx, goalID)
}

// SetTaskStatus flips a single task's completed flag and returns the
// goal with recomputed progress and status.
func (uc *GoalUseCase) SetTaskStatus(ctx context.Context, userID uuid.UUID, goalID, taskID int64, completed bool) (*domain.Goal, error) {
	goal, err := uc.getOwned(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := goal.SetTaskCompleted(taskID, completed); err != nil {
		return nil, err
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// getOwned fetches a goal and enforces ownership.
func (uc *GoalUseCase) getOwned(ctx context.Context, userID uuid.UUID, goalID int64) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if !goal.OwnedBy(userID) {
		return nil, domain.ErrForbidden
	}

	return goal, nil
}
