package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/pkg/entity"
)

const bookColumns = `book_id, name, description, words_count`

var booksSchema = []string{
	// last_word_id is the per-book word id allocator, see word_assign_id
	`CREATE TABLE IF NOT EXISTS book (
		book_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		words_count BIGINT NOT NULL DEFAULT 0,
		last_word_id BIGINT NOT NULL DEFAULT 0
	);`,
}

type BooksRepository struct {
	conn PgConnection
}

func NewBooksRepoWithConn(conn PgConnection) *BooksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for booksRepo: " + err.Error())
	}
	return &BooksRepository{
		conn: conn,
	}
}

func (br *BooksRepository) CreateSchema(ctx context.Context) error {
	if err := execAll(ctx, br.conn, booksSchema); err != nil {
		return fmt.Errorf("creating books schema error: %w", err)
	}
	return nil
}

func scanBook(row scanner) (*entity.Book, error) {
	var book entity.Book
	if err := row.Scan(&book.ID, &book.Name, &book.Description, &book.WordsCount); err != nil {
		return nil, err
	}
	return &book, nil
}

func (br *BooksRepository) Create(ctx context.Context, book *entity.NewBook) (*entity.Book, error) {
	if book == nil {
		return nil, errors.New("book is nil")
	}
	created, err := scanBook(br.conn.QueryRow(ctx,
		`INSERT INTO book (name, description) VALUES ($1, $2) RETURNING `+bookColumns+`;`,
		book.Name, book.Description,
	))
	if err != nil {
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("creating book db error: %w", err)
	}
	return created, nil
}

func (br *BooksRepository) Find(ctx context.Context, key entity.BookKey) (*entity.Book, error) {
	col, val := bookKeyColumn(key)
	book, err := scanBook(br.conn.QueryRow(ctx, `SELECT `+bookColumns+` FROM book WHERE `+col+` = $1;`, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityBook)
		}
		return nil, fmt.Errorf("searching book by %s error: %w", key, err)
	}
	return book, nil
}

func (br *BooksRepository) List(ctx context.Context) ([]*entity.Book, error) {
	rows, err := br.conn.Query(ctx, `SELECT `+bookColumns+` FROM book ORDER BY book_id;`)
	if err != nil {
		return nil, fmt.Errorf("listing books error: %w", err)
	}
	defer rows.Close()
	books := make([]*entity.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning book error: %w", err)
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("listing books error: %w", err)
	}
	return books, nil
}

func (br *BooksRepository) Update(ctx context.Context, key entity.BookKey, patch *entity.BookPatch) (*entity.Book, error) {
	var set setClause
	if patch != nil {
		if patch.Name.Set {
			set.add("name", patch.Name.Value)
		}
		if patch.Description.Set {
			set.add("description", patch.Description.Value)
		}
	}
	if set.empty() {
		return br.Find(ctx, key)
	}
	col, val := bookKeyColumn(key)
	query := `UPDATE book SET ` + set.String() + ` WHERE ` + col + ` = ` + set.arg(val) + ` RETURNING ` + bookColumns + `;`
	book, err := scanBook(br.conn.QueryRow(ctx, query, set.args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityBook)
		}
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("updating book error: %w", err)
	}
	return book, nil
}

func (br *BooksRepository) Delete(ctx context.Context, key entity.BookKey) (*entity.Book, error) {
	col, val := bookKeyColumn(key)
	book, err := scanBook(br.conn.QueryRow(ctx, `DELETE FROM book WHERE `+col+` = $1 RETURNING `+bookColumns+`;`, val))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityBook)
		}
		return nil, fmt.Errorf("deleting book error: %w", err)
	}
	return book, nil
}
