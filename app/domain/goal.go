package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalStatus is derived from task completion, never set by clients.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "In Progress"
	GoalStatusCompleted  GoalStatus = "Completed"
)

// Task is a single checklist item stored inline on its goal.
// IDs are assigned by position (1-based) whenever a task list is written.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Goal represents a user-owned career goal with an inline task list.
type Goal struct {
	ID          int64      `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tasks       []Task     `json:"tasks"`
	Progress    int        `json:"progress"`
	Status      GoalStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewGoal creates a goal owned by userID. Task IDs are assigned by position
// and progress/status are derived immediately.
func NewGoal(userID uuid.UUID, title string, tasks []Task) (*Goal, error) {
	if title == "" {
		return nil, NewValidationError("title", title, "title is required")
	}
	if len(title) > 255 {
		return nil, NewValidationError("title", title, "title must be at most 255 characters")
	}

	now := time.Now()
	goal := &Goal{
		UserID:    userID,
		Title:     title,
		Tasks:     tasks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	goal.NormalizeTasks()
	return goal, nil
}

// OwnedBy reports whether the goal belongs to the given user.
func (g *Goal) OwnedBy(userID uuid.UUID) bool {
	return g.UserID == userID
}

// NormalizeTasks reassigns task IDs by position and recomputes the
// derived progress and status fields. Must be called after any write
// to the task list.
func (g *Goal) NormalizeTasks() {
	for i := range g.Tasks {
		g.Tasks[i].ID = int64(i + 1)
	}
	g.Recalculate()
}

// Recalculate recomputes progress as round(100 * completed / total),
// 0 when the goal has no tasks, and status as Completed iff progress
// is 100.
func (g *Goal) Recalculate() {
	if len(g.Tasks) == 0 {
		g.Progress = 0
		g.Status = GoalStatusInProgress
		return
	}

	completed := 0
	for _, t := range g.Tasks {
		if t.Completed {
			completed++
		}
	}

	g.Progress = int(math.Round(100 * float64(completed) / float64(len(g.Tasks))))
	if g.Progress == 100 {
		g.Status = GoalStatusCompleted
	} else {
		g.Status = GoalStatusInProgress
	}
}

// SetTaskCompleted flips the completed flag of exactly one task and
// recomputes the derived fields. Returns ErrTaskNotFound when no task
// has the given ID.
func (g *Goal) SetTaskCompleted(taskID int64, completed bool) error {
	for i := range g.Tasks {
		if g.Tasks[i].ID == taskID {
			g.Tasks[i].Completed = completed
			g.Recalculate()
			g.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrTaskNotFound
}

// GoalPatch carries the optional fields of a goal update. Nil fields are
// left untouched; a non-nil Tasks replaces the whole task list.
type GoalPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	DueDate     *time.Time
	Tasks       *[]Task
}

// Apply merges the patch into the goal and refreshes derived state.
func (g *Goal) Apply(patch GoalPatch) {
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.Category != nil {
		g.Category = *patch.Category
	}
	if patch.Priority != nil {
		g.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		due := *patch.DueDate
		g.DueDate = &due
	}
	if patch.Tasks != nil {
		g.Tasks = *patch.Tasks
		g.NormalizeTasks()
	} else {
		g.Recalculate()
	}
	g.UpdatedAt = time.Now()
}
