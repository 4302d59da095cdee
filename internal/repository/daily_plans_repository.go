package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/pkg/entity"
)

const planColumns = `user_id, book_id, daily_goal, progress, progress - day_start_progress`

const evaluationColumns = `evaluation_id, user_id, book_id, date, daily_goal, daily_progress`

var dailyPlansSchema = []string{
	// day_start_progress is the progress value at the start of the current day
	`CREATE TABLE IF NOT EXISTS daily_plan (
		user_id BIGINT NOT NULL REFERENCES "user" (user_id) ON DELETE CASCADE,
		book_id BIGINT NOT NULL REFERENCES book (book_id) ON DELETE CASCADE,
		daily_goal BIGINT NOT NULL,
		progress BIGINT NOT NULL DEFAULT 0,
		day_start_progress BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (user_id, book_id)
	);`,
	`CREATE TABLE IF NOT EXISTS daily_plan_evaluation (
		evaluation_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES "user" (user_id) ON DELETE CASCADE,
		book_id BIGINT NOT NULL REFERENCES book (book_id) ON DELETE CASCADE,
		date DATE NOT NULL,
		daily_goal BIGINT NOT NULL,
		daily_progress BIGINT NOT NULL,
		UNIQUE (user_id, book_id, date)
	);`,
}

// Every plan is snapshotted and locked, one evaluation row per plan is
// appended for the day, and day_start_progress moves forward only for rows
// that were actually recorded, so a repeated run for the same day is a no-op.
const evaluateDayQuery = `WITH snapshot AS (
		SELECT user_id, book_id, daily_goal, progress, progress - day_start_progress AS daily_progress
		FROM daily_plan
		FOR UPDATE
	), recorded AS (
		INSERT INTO daily_plan_evaluation (user_id, book_id, date, daily_goal, daily_progress)
		SELECT user_id, book_id, $1::date, daily_goal, daily_progress FROM snapshot
		ON CONFLICT (user_id, book_id, date) DO NOTHING
		RETURNING user_id, book_id
	)
	UPDATE daily_plan p SET day_start_progress = s.progress
	FROM snapshot s JOIN recorded r USING (user_id, book_id)
	WHERE p.user_id = s.user_id AND p.book_id = s.book_id;`

type DailyPlansRepository struct {
	conn PgConnection
}

func NewDailyPlansRepoWithConn(conn PgConnection) *DailyPlansRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyPlansRepo: " + err.Error())
	}
	return &DailyPlansRepository{
		conn: conn,
	}
}

func (dr *DailyPlansRepository) CreateSchema(ctx context.Context) error {
	if err := execAll(ctx, dr.conn, dailyPlansSchema); err != nil {
		return fmt.Errorf("creating daily plans schema error: %w", err)
	}
	return nil
}

func scanPlan(row scanner) (*entity.DailyPlan, error) {
	var plan entity.DailyPlan
	if err := row.Scan(&plan.UserID, &plan.BookID, &plan.DailyGoal, &plan.Progress, &plan.DailyProgress); err != nil {
		return nil, err
	}
	plan.IsSubmitted = plan.DailyProgress >= plan.DailyGoal
	return &plan, nil
}

func planResult(plan *entity.DailyPlan, err error, action string) (*entity.DailyPlan, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityDailyPlan)
		}
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("%s daily plan error: %w", action, err)
	}
	return plan, nil
}

// scope checks that the user exists and resolves the book by name.
func (dr *DailyPlansRepository) scope(ctx context.Context, userID int64, bookName string) (int64, error) {
	var exists bool
	err := dr.conn.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM "user" WHERE user_id = $1);`, userID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("checking user error: %w", err)
	}
	if !exists {
		return 0, errorvalues.NotFound(errorvalues.EntityUser)
	}
	var bookID int64
	err = dr.conn.QueryRow(ctx, `SELECT book_id FROM book WHERE name = $1;`, bookName).Scan(&bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.NotFound(errorvalues.EntityBook)
		}
		return 0, fmt.Errorf("resolving book error: %w", err)
	}
	return bookID, nil
}

func (dr *DailyPlansRepository) Create(ctx context.Context, userID int64, bookName string, plan *entity.NewDailyPlan) (*entity.DailyPlan, error) {
	if plan == nil {
		return nil, errors.New("daily plan is nil")
	}
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	created, err := scanPlan(dr.conn.QueryRow(ctx,
		`INSERT INTO daily_plan (user_id, book_id, daily_goal) VALUES ($1, $2, $3) RETURNING `+planColumns+`;`,
		userID, bookID, plan.DailyGoal,
	))
	return planResult(created, err, "creating")
}

func (dr *DailyPlansRepository) Find(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error) {
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	plan, err := scanPlan(dr.conn.QueryRow(ctx,
		`SELECT `+planColumns+` FROM daily_plan WHERE user_id = $1 AND book_id = $2;`, userID, bookID))
	return planResult(plan, err, "searching")
}

func (dr *DailyPlansRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.DailyPlan, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+planColumns+` FROM daily_plan WHERE user_id = $1 ORDER BY book_id;`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing daily plans error: %w", err)
	}
	defer rows.Close()
	plans := make([]*entity.DailyPlan, 0)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning daily plan error: %w", err)
		}
		plans = append(plans, plan)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("listing daily plans error: %w", err)
	}
	return plans, nil
}

func (dr *DailyPlansRepository) Update(ctx context.Context, userID int64, bookName string, patch *entity.DailyPlanPatch) (*entity.DailyPlan, error) {
	var set setClause
	if patch != nil && patch.DailyGoal.Set {
		set.add("daily_goal", patch.DailyGoal.Value)
	}
	if set.empty() {
		return dr.Find(ctx, userID, bookName)
	}
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	query := `UPDATE daily_plan SET ` + set.String() +
		` WHERE user_id = ` + set.arg(userID) + ` AND book_id = ` + set.arg(bookID) +
		` RETURNING ` + planColumns + `;`
	plan, err := scanPlan(dr.conn.QueryRow(ctx, query, set.args...))
	return planResult(plan, err, "updating")
}

func (dr *DailyPlansRepository) Delete(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error) {
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	plan, err := scanPlan(dr.conn.QueryRow(ctx,
		`DELETE FROM daily_plan WHERE user_id = $1 AND book_id = $2 RETURNING `+planColumns+`;`, userID, bookID))
	return planResult(plan, err, "deleting")
}

func (dr *DailyPlansRepository) AdvanceProgress(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error) {
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	plan, err := scanPlan(dr.conn.QueryRow(ctx,
		`UPDATE daily_plan SET progress = progress + 1 WHERE user_id = $1 AND book_id = $2 RETURNING `+planColumns+`;`,
		userID, bookID,
	))
	return planResult(plan, err, "advancing")
}

func (dr *DailyPlansRepository) Evaluations(ctx context.Context, userID int64, bookName string) ([]*entity.DailyPlanEvaluation, error) {
	bookID, err := dr.scope(ctx, userID, bookName)
	if err != nil {
		return nil, err
	}
	rows, err := dr.conn.Query(ctx,
		`SELECT `+evaluationColumns+` FROM daily_plan_evaluation WHERE user_id = $1 AND book_id = $2 ORDER BY date;`,
		userID, bookID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations error: %w", err)
	}
	defer rows.Close()
	evaluations := make([]*entity.DailyPlanEvaluation, 0)
	for rows.Next() {
		var ev entity.DailyPlanEvaluation
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.BookID, &ev.Date, &ev.DailyGoal, &ev.DailyProgress); err != nil {
			return nil, fmt.Errorf("scanning evaluation error: %w", err)
		}
		evaluations = append(evaluations, &ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("listing evaluations error: %w", err)
	}
	return evaluations, nil
}

func (dr *DailyPlansRepository) EvaluateDay(ctx context.Context, day time.Time) (int64, error) {
	ct, err := dr.conn.Exec(ctx, evaluateDayQuery, day)
	if err != nil {
		return 0, fmt.Errorf("evaluating day %s error: %w", day.Format(time.DateOnly), err)
	}
	return ct.RowsAffected(), nil
}
