package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"nextpath/app/domain"
	"nextpath/app/port"
	"nextpath/app/rest/middleware"
	"nextpath/app/utils/validator"
)

const dueDateLayout = "2006-01-02"

// GoalHandler handles goal tracking HTTP requests. All routes sit
// behind the auth middleware; the owner is always the token subject.
type GoalHandler struct {
	goalUsecase port.GoalUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalUsecase port.GoalUsecase, validator *validator.Validator, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{
		goalUsecase: goalUsecase,
		validator:   validator,
		logger:      logger.With("component", "goal_handler"),
	}
}

type taskRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type createGoalRequest struct {
	Title       string        `json:"title" validate:"required,max=255"`
	Description *string       `json:"description"`
	Category    *string       `json:"category"`
	Priority    *string       `json:"priority"`
	DueDate     *string       `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Tasks       []taskRequest `json:"tasks"`
}

type updateGoalRequest struct {
	Title       *string        `json:"title" validate:"omitempty,max=255"`
	Description *string        `json:"description"`
	Category    *string        `json:"category"`
	Priority    *string        `json:"priority"`
	DueDate     *string        `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Tasks       *[]taskRequest `json:"tasks"`
}

type taskStatusRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// List handles GET /api/auth/goals
func (h *GoalHandler) List(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	goals, err := h.goalUsecase.List(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, goals)
}

// Get handles GET /api/auth/goals/:id
func (h *GoalHandler) Get(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})
	}

	goal, err := h.goalUsecase.Get(c.Request().Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, goal)
}

// Create handles POST /api/auth/goals
func (h *GoalHandler) Create(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	patch, err := goalPatchFrom(req.Description, req.Category, req.Priority, req.DueDate, &req.Tasks)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	goal, err := h.goalUsecase.Create(c.Request().Context(), userID, req.Title, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("goal created", "goal_id", goal.ID, "user_id", userID)
	return c.JSON(http.StatusCreated, goal)
}

// Update handles PUT /api/auth/goals/:id
func (h *GoalHandler) Update(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})
	}

	var req updateGoalRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	patch, err := goalPatchFrom(req.Description, req.Category, req.Priority, req.DueDate, req.Tasks)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	patch.Title = req.Title

	goal, err := h.goalUsecase.Update(c.Request().Context(), userID, id, patch)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, goal)
}

// Delete handles DELETE /api/auth/goals/:id
func (h *GoalHandler) Delete(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})
	}

	if err := h.goalUsecase.Delete(c.Request().Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Goal deleted"})
}

// SetTaskStatus handles PUT /api/auth/goals/:id/tasks/:taskId
func (h *GoalHandler) SetTaskStatus(c echo.Context) error {
	userID := c.Get(middleware.ContextUserID).(uuid.UUID)

	goalID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Goal not found"})
	}

	taskID, err := parseID(c.Param("taskId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Task not found"})
	}

	var req taskStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, h.logger, errInvalidBody)
	}

	if err := h.validator.Validate(&req); err != nil {
		return respondError(c, h.logger, err)
	}

	goal, err := h.goalUsecase.SetTaskStatus(c.Request().Context(), userID, goalID, taskID, *req.Completed)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, goal)
}

// goalPatchFrom assembles a domain patch from request fields. A nil
// tasks pointer leaves the stored list alone.
func goalPatchFrom(description, category, priority, dueDate *string, tasks *[]taskRequest) (domain.GoalPatch, error) {
	patch := domain.GoalPatch{
		Description: description,
		Category:    category,
		Priority:    priority,
	}

	if dueDate != nil {
		due, err := time.Parse(dueDateLayout, *dueDate)
		if err != nil {
			return patch, domain.NewValidationError("due_date", *dueDate, "due_date must be a valid date (YYYY-MM-DD)")
		}
		patch.DueDate = &due
	}

	if tasks != nil {
		converted := make([]domain.Task, 0, len(*tasks))
		for _, t := range *tasks {
			converted = append(converted, domain.Task{
				Text:      t.Text,
				Completed: t.Completed,
			})
		}
		patch.Tasks = &converted
	}

	return patch, nil
}
