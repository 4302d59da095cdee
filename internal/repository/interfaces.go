package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/wordbook/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates "user" table and the single-admin index
	CreateSchema(ctx context.Context) error
	// Inserts user with PasswordHash already set. The first user becomes admin
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Find(ctx context.Context, key entity.UserKey) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Applies only the set fields of changes
	Update(ctx context.Context, key entity.UserKey, changes *entity.UserChanges) (*entity.User, error)
	// Stores a new hash, used for transparent rehash on login
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, key entity.UserKey) (*entity.User, error)
}

type BooksRepositoryI interface {
	CreateSchema(ctx context.Context) error
	Create(ctx context.Context, book *entity.NewBook) (*entity.Book, error)
	Find(ctx context.Context, key entity.BookKey) (*entity.Book, error)
	List(ctx context.Context) ([]*entity.Book, error)
	Update(ctx context.Context, key entity.BookKey, patch *entity.BookPatch) (*entity.Book, error)
	// Deletes book with its words and daily plans
	Delete(ctx context.Context, key entity.BookKey) (*entity.Book, error)
}

type WordsRepositoryI interface {
	// Creates word table together with id and counter triggers. Requires book table
	CreateSchema(ctx context.Context) error
	Create(ctx context.Context, book entity.BookKey, word *entity.NewWord) (*entity.Word, error)
	Find(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error)
	// Returns the word at 0-based position order when ordered by id
	FindByOrder(ctx context.Context, book entity.BookKey, order int64) (*entity.Word, error)
	List(ctx context.Context, book entity.BookKey) ([]*entity.Word, error)
	Update(ctx context.Context, book entity.BookKey, wordID int64, patch *entity.WordPatch) (*entity.Word, error)
	Delete(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error)
	// Deletes every word of the book, returns how many were removed
	DeleteAll(ctx context.Context, book entity.BookKey) (int64, error)
}

type DailyPlansRepositoryI interface {
	// Creates daily_plan and daily_plan_evaluation tables. Requires user and book tables
	CreateSchema(ctx context.Context) error
	Create(ctx context.Context, userID int64, bookName string, plan *entity.NewDailyPlan) (*entity.DailyPlan, error)
	Find(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.DailyPlan, error)
	Update(ctx context.Context, userID int64, bookName string, patch *entity.DailyPlanPatch) (*entity.DailyPlan, error)
	Delete(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error)
	// Increments progress by one in a single statement
	AdvanceProgress(ctx context.Context, userID int64, bookName string) (*entity.DailyPlan, error)
	Evaluations(ctx context.Context, userID int64, bookName string) ([]*entity.DailyPlanEvaluation, error)
	// Records the results of day for every plan and starts a new day. Returns number of plans evaluated
	EvaluateDay(ctx context.Context, day time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	MaxConns int
}

func (pgcfg *PGCfg) ConnString() string {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.MaxConns > 0 {
		dsn += fmt.Sprintf("?pool_max_conns=%d", pgcfg.MaxConns)
	}
	return dsn
}
