package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"nextpath/app/domain"
	"nextpath/app/port"
)

// GoalRepository implements port.GoalRepository for PostgreSQL. Tasks are
// stored inline as a jsonb column; progress and status are persisted but
// recomputed from the task list after every read.
type GoalRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewGoalRepository creates a new PostgreSQL goal repository
func NewGoalRepository(db DatabaseIface, logger *slog.Logger) port.GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger.With("component", "goal_repository"),
	}
}

// ListByUser returns all goals owned by userID, newest first.
func (r *GoalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	query := `
		SELECT id, user_id, title, description, category, priority, due_date,
		       tasks, progress, status, created_at, updated_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.logger.Error("failed to list goals", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			r.logger.Error("failed to scan goal", "error", err)
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return goals, nil
}

// GetByID retrieves a goal regardless of owner. Ownership is enforced
// by the usecase layer so that it can distinguish missing from foreign.
func (r *GoalRepository) GetByID(ctx context.Context, id int64) (*domain.Goal, error) {
	query := `
		SELECT id, user_id, title, description, category, priority, due_date,
		       tasks, progress, status, created_at, updated_at
		FROM goals
		WHERE id = $1`

	goal, err := scanGoal(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		r.logger.Error("failed to get goal", "goal_id", id, "error", err)
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return goal, nil
}

// Create inserts a goal and fills in its generated id.
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	tasks, err := json.Marshal(goal.Tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	query := `
		INSERT INTO goals (user_id, title, description, category, priority, due_date,
		                   tasks, progress, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err = r.db.QueryRow(ctx, query,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Priority,
		goal.DueDate,
		tasks,
		goal.Progress,
		goal.Status,
		goal.CreatedAt,
		goal.UpdatedAt,
	).Scan(&goal.ID)

	if err != nil {
		r.logger.Error("failed to create goal", "user_id", goal.UserID, "error", err)
		return fmt.Errorf("failed to create goal: %w", err)
	}

	r.logger.Info("goal created", "goal_id", goal.ID, "user_id", goal.UserID)
	return nil
}

// Update persists the full state of a goal.
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	tasks, err := json.Marshal(goal.Tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	query := `
		UPDATE goals
		SET title = $1, description = $2, category = $3, priority = $4, due_date = $5,
		    tasks = $6, progress = $7, status = $8, updated_at = $9
		WHERE id = $10`

	result, err := r.db.Exec(ctx, query,
		goal.Title,
		goal.Description,
		goal.Category,
		goal.Priority,
		goal.DueDate,
		tasks,
		goal.Progress,
		goal.Status,
		goal.UpdatedAt,
		goal.ID,
	)

	if err != nil {
		r.logger.Error("failed to update goal", "goal_id", goal.ID, "error", err)
		return fmt.Errorf("failed to update goal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	r.logger.Info("goal updated", "goal_id", goal.ID)
	return nil
}

// Delete removes a goal by id.
func (r *GoalRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM goals WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete goal", "goal_id", id, "error", err)
		return fmt.Errorf("failed to delete goal: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrGoalNotFound
	}

	r.logger.Info("goal deleted", "goal_id", id)
	return nil
}

// scanGoal scans a goal row and rebuilds the derived fields from the
// stored task list.
func scanGoal(row pgx.Row) (*domain.Goal, error) {
	goal := &domain.Goal{}
	var tasks []byte

	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Description,
		&goal.Category,
		&goal.Priority,
		&goal.DueDate,
		&tasks,
		&goal.Progress,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tasks) > 0 {
		if err := json.Unmarshal(tasks, &goal.Tasks); err != nil {
			return nil, fmt.Errorf("failed to decode tasks: %w", err)
		}
	}
	goal.Recalculate()

	return goal, nil
}
