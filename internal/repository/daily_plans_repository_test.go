package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planRowColumns = []string{"user_id", "book_id", "daily_goal", "progress", "daily_progress"}

var (
	userExistsQuery = regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM "user" WHERE user_id = $1);`)
	bookByNameQuery = regexp.QuoteMeta(`SELECT book_id FROM book WHERE name = $1;`)
)

func planRow(userID, bookID, goal, progress, daily int64) *pgxmock.Rows {
	return pgxmock.NewRows(planRowColumns).AddRow(userID, bookID, goal, progress, daily)
}

func expectScope(conn pgxmock.PgxPoolIface, userID int64, bookName string, bookID int64) {
	conn.ExpectQuery(userExistsQuery).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
	conn.ExpectQuery(bookByNameQuery).WithArgs(bookName).WillReturnRows(pgxmock.NewRows([]string{"book_id"}).AddRow(bookID))
}

func TestDailyPlanScope(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	ctx := context.Background()
	findQuery := regexp.QuoteMeta(`FROM daily_plan WHERE user_id = $1 AND book_id = $2;`)

	testCases := []struct {
		Desc         string
		Entity       string
		MockPrepFunc func()
	}{
		{
			Desc:   "user missing",
			Entity: errorvalues.EntityUser,
			MockPrepFunc: func() {
				conn.ExpectQuery(userExistsQuery).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			Desc:   "book missing",
			Entity: errorvalues.EntityBook,
			MockPrepFunc: func() {
				conn.ExpectQuery(userExistsQuery).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				conn.ExpectQuery(bookByNameQuery).WithArgs("Basics").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:   "plan missing",
			Entity: errorvalues.EntityDailyPlan,
			MockPrepFunc: func() {
				expectScope(conn, 1, "Basics", 2)
				conn.ExpectQuery(findQuery).WithArgs(int64(1), int64(2)).WillReturnError(pgx.ErrNoRows)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			_, err := repo.Find(ctx, 1, "Basics")
			assert.ErrorIs(t, err, errorvalues.ErrNotFound)
			entityName, ok := errorvalues.MissingEntity(err)
			assert.True(t, ok)
			assert.Equal(t, tc.Entity, entityName)
		})
	}
	t.Run("found", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(findQuery).WithArgs(int64(1), int64(2)).WillReturnRows(planRow(1, 2, 3, 5, 3))
		plan, err := repo.Find(ctx, 1, "Basics")
		require.NoError(t, err)
		assert.Equal(t, &entity.DailyPlan{UserID: 1, BookID: 2, DailyGoal: 3, Progress: 5, DailyProgress: 3, IsSubmitted: true}, plan)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestCreateDailyPlan(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO daily_plan (user_id, book_id, daily_goal) VALUES ($1, $2, $3) RETURNING user_id, book_id, daily_goal, progress, progress - day_start_progress;`)
	ctx := context.Background()

	t.Run("created", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2), int64(3)).WillReturnRows(planRow(1, 2, 3, 0, 0))
		plan, err := repo.Create(ctx, 1, "Basics", &entity.NewDailyPlan{DailyGoal: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(0), plan.Progress)
		assert.False(t, plan.IsSubmitted)
	})
	t.Run("duplicate", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2), int64(3)).WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, 1, "Basics", &entity.NewDailyPlan{DailyGoal: 3})
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateRecord)
	})
	t.Run("db error", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2), int64(3)).WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, 1, "Basics", &entity.NewDailyPlan{DailyGoal: 3})
		assert.EqualError(t, err, "creating daily plan error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListDailyPlans(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	conn.ExpectQuery(regexp.QuoteMeta(`FROM daily_plan WHERE user_id = $1 ORDER BY book_id;`)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(planRowColumns).
			AddRow(int64(1), int64(1), int64(3), int64(3), int64(3)).
			AddRow(int64(1), int64(2), int64(5), int64(1), int64(1)))
	plans, err := repo.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.True(t, plans[0].IsSubmitted)
	assert.False(t, plans[1].IsSubmitted)
}

func TestUpdateDailyPlan(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	ctx := context.Background()

	t.Run("goal changed", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE daily_plan SET daily_goal = $1 WHERE user_id = $2 AND book_id = $3 RETURNING`)).
			WithArgs(int64(10), int64(1), int64(2)).
			WillReturnRows(planRow(1, 2, 10, 4, 4))
		plan, err := repo.Update(ctx, 1, "Basics", &entity.DailyPlanPatch{DailyGoal: entity.Some[int64](10)})
		require.NoError(t, err)
		assert.Equal(t, int64(10), plan.DailyGoal)
	})
	t.Run("empty patch", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(regexp.QuoteMeta(`FROM daily_plan WHERE user_id = $1 AND book_id = $2;`)).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(planRow(1, 2, 10, 4, 4))
		plan, err := repo.Update(ctx, 1, "Basics", &entity.DailyPlanPatch{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), plan.Progress)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteDailyPlan(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	query := regexp.QuoteMeta(`DELETE FROM daily_plan WHERE user_id = $1 AND book_id = $2 RETURNING`)
	t.Run("deleted", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).WillReturnRows(planRow(1, 2, 3, 0, 0))
		_, err := repo.Delete(context.Background(), 1, "Basics")
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Delete(context.Background(), 1, "Basics")
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
}

func TestAdvanceProgress(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	query := regexp.QuoteMeta(`UPDATE daily_plan SET progress = progress + 1 WHERE user_id = $1 AND book_id = $2 RETURNING`)

	t.Run("reaches goal", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).WillReturnRows(planRow(1, 2, 1, 1, 1))
		plan, err := repo.AdvanceProgress(context.Background(), 1, "Basics")
		require.NoError(t, err)
		assert.Equal(t, int64(1), plan.Progress)
		assert.True(t, plan.IsSubmitted)
	})
	t.Run("no plan", func(t *testing.T) {
		expectScope(conn, 1, "Basics", 2)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).WillReturnError(pgx.ErrNoRows)
		_, err := repo.AdvanceProgress(context.Background(), 1, "Basics")
		entityName, _ := errorvalues.MissingEntity(err)
		assert.Equal(t, errorvalues.EntityDailyPlan, entityName)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestEvaluations(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	expectScope(conn, 1, "Basics", 2)
	conn.ExpectQuery(regexp.QuoteMeta(`FROM daily_plan_evaluation WHERE user_id = $1 AND book_id = $2 ORDER BY date;`)).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"evaluation_id", "user_id", "book_id", "date", "daily_goal", "daily_progress"}).
			AddRow(int64(1), int64(1), int64(2), day, int64(3), int64(2)).
			AddRow(int64(4), int64(1), int64(2), day.AddDate(0, 0, 1), int64(3), int64(3)))
	evaluations, err := repo.Evaluations(context.Background(), 1, "Basics")
	require.NoError(t, err)
	require.Len(t, evaluations, 2)
	assert.Equal(t, day, evaluations[0].Date)
	assert.Equal(t, int64(3), evaluations[1].DailyProgress)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestEvaluateDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDailyPlansRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO daily_plan_evaluation (user_id, book_id, date, daily_goal, daily_progress)`)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("evaluated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(day).WillReturnResult(pgxmock.NewResult("UPDATE", 4))
		n, err := repo.EvaluateDay(context.Background(), day)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(pgxmock.AnyArg()).WillReturnError(errors.New("db error"))
		_, err := repo.EvaluateDay(context.Background(), day)
		assert.EqualError(t, err, "evaluating day 2024-03-01 error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
