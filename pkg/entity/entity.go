package entity

import (
	"time"
)

type User struct {
	ID           int64   `json:"user_id"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	IsAdmin      bool    `json:"is_admin"`
	Nickname     *string `json:"nickname"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
}

// UserPatch is a partial profile update as sent by the owner.
// Password comes in plaintext and is hashed before it reaches storage.
type UserPatch struct {
	Name     Optional[string]  `json:"name" validate:"omitnil,alphanum_underscore,min=3,max=100"`
	Password Optional[string]  `json:"password" validate:"omitnil,min=8,max=128"`
	Nickname Optional[*string] `json:"nickname" validate:"omitnil,max=100"`
	Email    Optional[*string] `json:"email" validate:"omitnil,email"`
	Phone    Optional[*string] `json:"phone" validate:"omitnil,min=3,max=32"`
}

// UserChanges is the storage-level counterpart of UserPatch.
type UserChanges struct {
	Name         Optional[string]
	PasswordHash Optional[string]
	Nickname     Optional[*string]
	Email        Optional[*string]
	Phone        Optional[*string]
}

type Book struct {
	ID          int64   `json:"book_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	WordsCount  int64   `json:"words_count"`
}

type NewBook struct {
	Name        string
	Description *string
}

type BookPatch struct {
	Name        Optional[string]  `json:"name" validate:"omitnil,min=1,max=200"`
	Description Optional[*string] `json:"description" validate:"omitnil,max=2000"`
}

type Word struct {
	BookID      int64   `json:"book_id"`
	WordID      int64   `json:"word_id"`
	Spelling    string  `json:"spelling"`
	Translation *string `json:"translation"`
}

type NewWord struct {
	Spelling    string
	Translation *string
}

type WordPatch struct {
	Spelling    Optional[string]  `json:"spelling" validate:"omitnil,min=1,max=200"`
	Translation Optional[*string] `json:"translation" validate:"omitnil,max=1000"`
}

type DailyPlan struct {
	UserID        int64 `json:"user_id"`
	BookID        int64 `json:"book_id"`
	DailyGoal     int64 `json:"daily_goal"`
	Progress      int64 `json:"progress"`
	DailyProgress int64 `json:"daily_progress"`
	IsSubmitted   bool  `json:"is_submitted"`
}

type NewDailyPlan struct {
	DailyGoal int64
}

type DailyPlanPatch struct {
	DailyGoal Optional[int64] `json:"daily_goal" validate:"omitnil,min=1,max=10000"`
}

type DailyPlanEvaluation struct {
	ID            int64     `json:"evaluation_id"`
	UserID        int64     `json:"user_id"`
	BookID        int64     `json:"book_id"`
	Date          time.Time `json:"date"`
	DailyGoal     int64     `json:"daily_goal"`
	DailyProgress int64     `json:"daily_progress"`
}

// DailyWord is the word a plan currently points at. Translation stays
// hidden until the day's goal is reached.
type DailyWord struct {
	IsSubmitted bool    `json:"is_submitted"`
	BookID      int64   `json:"book_id"`
	WordID      int64   `json:"word_id"`
	Spelling    string  `json:"spelling"`
	Translation *string `json:"translation,omitempty"`
}
