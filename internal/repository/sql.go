package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/limbo/wordbook/pkg/entity"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// scanner is implemented by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func isPgError(err error, code string) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr, true
	}
	return nil, false
}

func execAll(ctx context.Context, conn PgConnection, statements []string) error {
	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func userKeyColumn(key entity.UserKey) (string, any) {
	if key.ByName() {
		return "name", key.Name
	}
	return "user_id", key.ID
}

func bookKeyColumn(key entity.BookKey) (string, any) {
	if key.ByName() {
		return "name", key.Name
	}
	return "book_id", key.ID
}

// setClause collects "column = $n" assignments of an UPDATE statement.
type setClause struct {
	assignments []string
	args        []any
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.assignments = append(s.assignments, column+" = $"+strconv.Itoa(len(s.args)))
}

// arg appends a non-assignment argument and returns its placeholder.
func (s *setClause) arg(value any) string {
	s.args = append(s.args, value)
	return "$" + strconv.Itoa(len(s.args))
}

func (s *setClause) empty() bool {
	return len(s.assignments) == 0
}

func (s *setClause) String() string {
	return strings.Join(s.assignments, ", ")
}
