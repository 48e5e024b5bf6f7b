package port

//go:generate mockgen -source=goal_port.go -destination=../mocks/mock_goal_port.go

import (
	"context"

	"github.com/google/uuid"

	"nextpath/app/domain"
)

// GoalUsecase defines goal business logic. Every operation is scoped to
// the authenticated caller; foreign goals yield domain.ErrForbidden.
type GoalUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error)
	Get(ctx context.Context, userID uuid.UUID, goalID int64) (*domain.Goal, error)
	Create(ctx context.Context, userID uuid.UUID, title string, patch domain.GoalPatch) (*domain.Goal, error)
	Update(ctx context.Context, userID uuid.UUID, goalID int64, patch domain.GoalPatch) (*domain.Goal, error)
	Delete(ctx context.Context, userID uuid.UUID, goalID int64) error
	SetTaskStatus(ctx context.Context, userID uuid.UUID, goalID, taskID int64, completed bool) (*domain.Goal, error)
}

// GoalRepository defines goal data access
type GoalRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error)
	GetByID(ctx context.Context, goalID int64) (*domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) error
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, goalID int64) error
}
