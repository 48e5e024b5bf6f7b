package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nextpath/app/domain"
	"nextpath/app/mocks"
	"nextpath/app/rest/middleware"
	"nextpath/app/utils/logger"
	"nextpath/app/utils/validator"
)

func newGoalHandlerWithMock(t *testing.T) (*GoalHandler, *mocks.MockGoalUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	goalUsecase := mocks.NewMockGoalUsecase(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	return NewGoalHandler(goalUsecase, validator.New(), testLogger), goalUsecase
}

func authedContext(t *testing.T, method, path, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, userID)

	return c, rec
}

func sampleGoal(t *testing.T, userID uuid.UUID) *domain.Goal {
	t.Helper()

	goal, err := domain.NewGoal(userID, "Learn Go", []domain.Task{
		{Text: "read the tour", Completed: true},
		{Text: "build a service"},
	})
	require.NoError(t, err)
	goal.ID = 7

	return goal
}

func TestGoalHandler_List(t *testing.T) {
	h, goalUsecase := newGoalHandlerWithMock(t)
	userID := uuid.New()

	goalUsecase.EXPECT().
		List(gomock.Any(), userID).
		Return([]*domain.Goal{sampleGoal(t, userID)}, nil)

	c, rec := authedContext(t, http.MethodGet, "/api/auth/goals", "", userID)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Learn Go"`)
	assert.Contains(t, rec.Body.String(), `"progress":50`)
}

func TestGoalHandler_Get(t *testing.T) {
	t.Run("own goal", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()
		goal := sampleGoal(t, userID)

		goalUsecase.EXPECT().Get(gomock.Any(), userID, goal.ID).Return(goal, nil)

		c, rec := authedContext(t, http.MethodGet, "/api/auth/goals/7", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign goal returns 403", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()

		goalUsecase.EXPECT().Get(gomock.Any(), userID, int64(7)).Return(nil, domain.ErrForbidden)

		c, rec := authedContext(t, http.MethodGet, "/api/auth/goals/7", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("7")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing goal returns 404", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()

		goalUsecase.EXPECT().Get(gomock.Any(), userID, int64(99)).Return(nil, domain.ErrGoalNotFound)

		c, rec := authedContext(t, http.MethodGet, "/api/auth/goals/99", "", userID)
		c.SetParamNames("id")
		c.SetParamValues("99")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 404", func(t *testing.T) {
		h, _ := newGoalHandlerWithMock(t)

		c, rec := authedContext(t, http.MethodGet, "/api/auth/goals/abc", "", uuid.New())
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGoalHandler_Create(t *testing.T) {
	t.Run("creates goal with inline tasks", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()
		goal := sampleGoal(t, userID)

		goalUsecase.EXPECT().
			Create(gomock.Any(), userID, "Learn Go", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, _ string, patch domain.GoalPatch) (*domain.Goal, error) {
				require.NotNil(t, patch.Tasks)
				assert.Len(t, *patch.Tasks, 2)
				require.NotNil(t, patch.DueDate)
				return goal, nil
			})

		body := `{"title":"Learn Go","due_date":"2026-12-31","tasks":[{"text":"read the tour","completed":true},{"text":"build a service"}]}`
		c, rec := authedContext(t, http.MethodPost, "/api/auth/goals", body, userID)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing title returns 422", func(t *testing.T) {
		h, _ := newGoalHandlerWithMock(t)

		c, rec := authedContext(t, http.MethodPost, "/api/auth/goals", `{"description":"no title"}`, uuid.New())

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title"`)
	})

	t.Run("malformed due_date returns 422", func(t *testing.T) {
		h, _ := newGoalHandlerWithMock(t)

		c, rec := authedContext(t, http.MethodPost, "/api/auth/goals",
			`{"title":"Learn Go","due_date":"next year"}`, uuid.New())

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"due_date"`)
	})
}

func TestGoalHandler_Update(t *testing.T) {
	h, goalUsecase := newGoalHandlerWithMock(t)
	userID := uuid.New()
	goal := sampleGoal(t, userID)

	goalUsecase.EXPECT().
		Update(gomock.Any(), userID, goal.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _ int64, patch domain.GoalPatch) (*domain.Goal, error) {
			require.NotNil(t, patch.Title)
			assert.Equal(t, "Master Go", *patch.Title)
			assert.Nil(t, patch.Tasks)
			return goal, nil
		})

	c, rec := authedContext(t, http.MethodPut, "/api/auth/goals/7", `{"title":"Master Go"}`, userID)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGoalHandler_Delete(t *testing.T) {
	h, goalUsecase := newGoalHandlerWithMock(t)
	userID := uuid.New()

	goalUsecase.EXPECT().Delete(gomock.Any(), userID, int64(7)).Return(nil)

	c, rec := authedContext(t, http.MethodDelete, "/api/auth/goals/7", "", userID)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Goal deleted"}`, rec.Body.String())
}

func TestGoalHandler_SetTaskStatus(t *testing.T) {
	t.Run("flips a task", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()
		goal := sampleGoal(t, userID)
		require.NoError(t, goal.SetTaskCompleted(2, true))

		goalUsecase.EXPECT().
			SetTaskStatus(gomock.Any(), userID, int64(7), int64(2), true).
			Return(goal, nil)

		c, rec := authedContext(t, http.MethodPut, "/api/auth/goals/7/tasks/2", `{"completed":true}`, userID)
		c.SetParamNames("id", "taskId")
		c.SetParamValues("7", "2")

		require.NoError(t, h.SetTaskStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"progress":100`)
		assert.Contains(t, rec.Body.String(), `"Completed"`)
	})

	t.Run("missing completed flag returns 422", func(t *testing.T) {
		h, _ := newGoalHandlerWithMock(t)

		c, rec := authedContext(t, http.MethodPut, "/api/auth/goals/7/tasks/2", `{}`, uuid.New())
		c.SetParamNames("id", "taskId")
		c.SetParamValues("7", "2")

		require.NoError(t, h.SetTaskStatus(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown task returns 404", func(t *testing.T) {
		h, goalUsecase := newGoalHandlerWithMock(t)
		userID := uuid.New()

		goalUsecase.EXPECT().
			SetTaskStatus(gomock.Any(), userID, int64(7), int64(99), true).
			Return(nil, domain.ErrTaskNotFound)

		c, rec := authedContext(t, http.MethodPut, "/api/auth/goals/7/tasks/99", `{"completed":true}`, userID)
		c.SetParamNames("id", "taskId")
		c.SetParamValues("7", "99")

		require.NoError(t, h.SetTaskStatus(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
