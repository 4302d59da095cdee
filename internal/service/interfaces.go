package service

import (
	"context"
	"time"

	"github.com/limbo/wordbook/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type RegisterRequest struct {
	Name     string  `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string  `validate:"required,min=8,max=128"`
	Nickname *string `validate:"omitnil,max=100"`
	Email    *string `validate:"omitnil,email"`
	Phone    *string `validate:"omitnil,min=3,max=32"`
}

type CreateBookRequest struct {
	Name        string  `validate:"required,max=200"`
	Description *string `validate:"omitnil,max=2000"`
}

type CreateWordRequest struct {
	Spelling    string  `validate:"required,max=200"`
	Translation *string `validate:"omitnil,max=1000"`
}

type CreateDailyPlanRequest struct {
	DailyGoal int64 `validate:"required,min=1,max=10000"`
}

type UserServiceI interface {
	// Validates user's data, hashes password and creates new row in database
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Verifies credentials. Stored hash is upgraded when hashing parameters changed
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id int64, patch *entity.UserPatch) (*entity.User, error)
	Delete(ctx context.Context, id int64) (*entity.User, error)
}

type BookServiceI interface {
	List(ctx context.Context) ([]*entity.Book, error)
	Get(ctx context.Context, key entity.BookKey) (*entity.Book, error)
	Create(ctx context.Context, req *CreateBookRequest) (*entity.Book, error)
	Update(ctx context.Context, key entity.BookKey, patch *entity.BookPatch) (*entity.Book, error)
	Delete(ctx context.Context, key entity.BookKey) (*entity.Book, error)
}

type WordServiceI interface {
	List(ctx context.Context, book entity.BookKey) ([]*entity.Word, error)
	Get(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error)
	Create(ctx context.Context, book entity.BookKey, req *CreateWordRequest) (*entity.Word, error)
	Update(ctx context.Context, book entity.BookKey, wordID int64, patch *entity.WordPatch) (*entity.Word, error)
	Delete(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error)
	// Removes all words of the book, returns number of removed words
	Clear(ctx context.Context, book entity.BookKey) (int64, error)
}

type DailyPlanServiceI interface {
	List(ctx context.Context, userID int64) ([]*entity.DailyPlan, error)
	Get(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error)
	Create(ctx context.Context, userID int64, book string, req *CreateDailyPlanRequest) (*entity.DailyPlan, error)
	Update(ctx context.Context, userID int64, book string, patch *entity.DailyPlanPatch) (*entity.DailyPlan, error)
	Delete(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error)
	// Word the plan currently points at
	TodayWord(ctx context.Context, userID int64, book string) (*entity.DailyWord, error)
	// Marks current word as learned and moves the plan to the next one
	SubmitWord(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error)
	Evaluations(ctx context.Context, userID int64, book string) ([]*entity.DailyPlanEvaluation, error)
	EvaluateDay(ctx context.Context, day time.Time) (int64, error)
}
