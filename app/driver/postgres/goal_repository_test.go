package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextpath/app/domain"
	"nextpath/app/utils/logger"
)

var goalColumns = []string{
	"id", "user_id", "title", "description", "category", "priority", "due_date",
	"tasks", "progress", "status", "created_at", "updated_at",
}

func createTestGoalRepository(t *testing.T) (*GoalRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewGoalRepository(mockDB, testLogger).(*GoalRepository)

	return repo, mockDB
}

func goalRow(t *testing.T, id int64, userID uuid.UUID, tasks string) *pgxmock.Rows {
	t.Helper()

	now := time.Now()
	return pgxmock.NewRows(goalColumns).AddRow(
		id,
		userID,
		"Learn Go",
		"study plan",
		"Skill",
		"High",
		nil,
		[]byte(tasks),
		0,
		domain.GoalStatusInProgress,
		now,
		now,
	)
}

func TestGoalRepository_ListByUser(t *testing.T) {
	t.Run("returns goals with recomputed progress", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		tasks := `[{"id":1,"text":"read book","completed":true},{"id":2,"text":"build project","completed":false}]`

		mockDB.ExpectQuery("SELECT(.+)FROM goals(.+)WHERE user_id").
			WithArgs(userID).
			WillReturnRows(goalRow(t, 1, userID, tasks))

		goals, err := repo.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, goals, 1)

		assert.Equal(t, int64(1), goals[0].ID)
		assert.Len(t, goals[0].Tasks, 2)
		assert.Equal(t, 50, goals[0].Progress)
		assert.Equal(t, domain.GoalStatusInProgress, goals[0].Status)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		mockDB.ExpectQuery("SELECT(.+)FROM goals(.+)WHERE user_id").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(goalColumns))

		goals, err := repo.ListByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.NotNil(t, goals)
		assert.Empty(t, goals)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		mockDB.ExpectQuery("SELECT(.+)FROM goals(.+)WHERE user_id").
			WithArgs(userID).
			WillReturnError(pgx.ErrTxClosed)

		goals, err := repo.ListByUser(context.Background(), userID)
		assert.Error(t, err)
		assert.Nil(t, goals)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestGoalRepository_GetByID(t *testing.T) {
	t.Run("successful retrieval", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		userID := uuid.New()
		tasks := `[{"id":1,"text":"done","completed":true}]`

		mockDB.ExpectQuery("SELECT(.+)FROM goals(.+)WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(goalRow(t, 7, userID, tasks))

		goal, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		require.NotNil(t, goal)

		assert.Equal(t, int64(7), goal.ID)
		assert.Equal(t, userID, goal.UserID)
		assert.Equal(t, 100, goal.Progress)
		assert.Equal(t, domain.GoalStatusCompleted, goal.Status)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("goal not found", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM goals(.+)WHERE id").
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		goal, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
		assert.Nil(t, goal)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestGoalRepository_Create(t *testing.T) {
	t.Run("fills in generated id", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		goal, err := domain.NewGoal(uuid.New(), "Learn Go", []domain.Task{
			{Text: "read book"},
		})
		require.NoError(t, err)

		mockDB.ExpectQuery("INSERT INTO goals").
			WithArgs(
				goal.UserID,
				goal.Title,
				goal.Description,
				goal.Category,
				goal.Priority,
				goal.DueDate,
				pgxmock.AnyArg(), // tasks json
				goal.Progress,
				goal.Status,
				goal.CreatedAt,
				goal.UpdatedAt,
			).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

		err = repo.Create(context.Background(), goal)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), goal.ID)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		goal, err := domain.NewGoal(uuid.New(), "Learn Go", nil)
		require.NoError(t, err)

		mockDB.ExpectQuery("INSERT INTO goals").
			WithArgs(
				goal.UserID,
				goal.Title,
				goal.Description,
				goal.Category,
				goal.Priority,
				goal.DueDate,
				pgxmock.AnyArg(),
				goal.Progress,
				goal.Status,
				goal.CreatedAt,
				goal.UpdatedAt,
			).
			WillReturnError(pgx.ErrTxClosed)

		err = repo.Create(context.Background(), goal)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create goal")

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestGoalRepository_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		goal, err := domain.NewGoal(uuid.New(), "Learn Go", nil)
		require.NoError(t, err)
		goal.ID = 7

		mockDB.ExpectExec("UPDATE goals").
			WithArgs(
				goal.Title,
				goal.Description,
				goal.Category,
				goal.Priority,
				goal.DueDate,
				pgxmock.AnyArg(),
				goal.Progress,
				goal.Status,
				goal.UpdatedAt,
				goal.ID,
			).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Update(context.Background(), goal))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing goal maps to ErrGoalNotFound", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		goal, err := domain.NewGoal(uuid.New(), "Learn Go", nil)
		require.NoError(t, err)
		goal.ID = 99

		mockDB.ExpectExec("UPDATE goals").
			WithArgs(
				goal.Title,
				goal.Description,
				goal.Category,
				goal.Priority,
				goal.DueDate,
				pgxmock.AnyArg(),
				goal.Progress,
				goal.Status,
				goal.UpdatedAt,
				goal.ID,
			).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.Update(context.Background(), goal), domain.ErrGoalNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestGoalRepository_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM goals WHERE id").
			WithArgs(int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 7))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("missing goal maps to ErrGoalNotFound", func(t *testing.T) {
		repo, mockDB := createTestGoalRepository(t)
		defer mockDB.Close()

		mockDB.ExpectExec("DELETE FROM goals WHERE id").
			WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 99), domain.ErrGoalNotFound)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
