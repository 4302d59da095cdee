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

const wordColumns = `book_id, word_id, spelling, translation`

// Word ids are handed out per book from book.last_word_id and never reused.
// book.words_count follows inserts and deletes of word rows, application
// code never writes it.
var wordsSchema = []string{
	`CREATE TABLE IF NOT EXISTS word (
		book_id BIGINT NOT NULL REFERENCES book (book_id) ON DELETE CASCADE,
		word_id BIGINT NOT NULL,
		spelling TEXT NOT NULL,
		translation TEXT,
		PRIMARY KEY (book_id, word_id),
		UNIQUE (book_id, spelling)
	);`,
	`CREATE OR REPLACE FUNCTION word_assign_id() RETURNS trigger AS $$
	BEGIN
		UPDATE book SET last_word_id = last_word_id + 1
		WHERE book_id = NEW.book_id
		RETURNING last_word_id INTO NEW.word_id;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`CREATE OR REPLACE FUNCTION word_count_changed() RETURNS trigger AS $$
	BEGIN
		IF TG_OP = 'INSERT' THEN
			UPDATE book SET words_count = words_count + 1 WHERE book_id = NEW.book_id;
			RETURN NEW;
		END IF;
		UPDATE book SET words_count = words_count - 1 WHERE book_id = OLD.book_id;
		RETURN OLD;
	END;
	$$ LANGUAGE plpgsql;`,
	`DROP TRIGGER IF EXISTS word_assign_id ON word;`,
	`CREATE TRIGGER word_assign_id BEFORE INSERT ON word
		FOR EACH ROW EXECUTE FUNCTION word_assign_id();`,
	`DROP TRIGGER IF EXISTS word_count_changed ON word;`,
	`CREATE TRIGGER word_count_changed AFTER INSERT OR DELETE ON word
		FOR EACH ROW EXECUTE FUNCTION word_count_changed();`,
}

type WordsRepository struct {
	conn PgConnection
}

func NewWordsRepoWithConn(conn PgConnection) *WordsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for wordsRepo: " + err.Error())
	}
	return &WordsRepository{
		conn: conn,
	}
}

func (wr *WordsRepository) CreateSchema(ctx context.Context) error {
	if err := execAll(ctx, wr.conn, wordsSchema); err != nil {
		return fmt.Errorf("creating words schema error: %w", err)
	}
	return nil
}

func scanWord(row scanner) (*entity.Word, error) {
	var word entity.Word
	if err := row.Scan(&word.BookID, &word.WordID, &word.Spelling, &word.Translation); err != nil {
		return nil, err
	}
	return &word, nil
}

// bookID resolves book key to id, so that a missing book is told apart from a missing word.
func (wr *WordsRepository) bookID(ctx context.Context, key entity.BookKey) (int64, error) {
	col, val := bookKeyColumn(key)
	var id int64
	err := wr.conn.QueryRow(ctx, `SELECT book_id FROM book WHERE `+col+` = $1;`, val).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errorvalues.NotFound(errorvalues.EntityBook)
		}
		return 0, fmt.Errorf("resolving book by %s error: %w", key, err)
	}
	return id, nil
}

func wordResult(word *entity.Word, err error, action string) (*entity.Word, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.NotFound(errorvalues.EntityWord)
		}
		if _, ok := isPgError(err, codeUniqueViolation); ok {
			return nil, errorvalues.ErrDuplicateRecord
		}
		return nil, fmt.Errorf("%s word error: %w", action, err)
	}
	return word, nil
}

func (wr *WordsRepository) Create(ctx context.Context, book entity.BookKey, word *entity.NewWord) (*entity.Word, error) {
	if word == nil {
		return nil, errors.New("word is nil")
	}
	col, val := bookKeyColumn(book)
	created, err := scanWord(wr.conn.QueryRow(ctx,
		`INSERT INTO word (book_id, spelling, translation)
		SELECT book_id, $2::text, $3::text FROM book WHERE `+col+` = $1
		RETURNING `+wordColumns+`;`,
		val, word.Spelling, word.Translation,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errorvalues.NotFound(errorvalues.EntityBook)
	}
	return wordResult(created, err, "creating")
}

func (wr *WordsRepository) Find(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error) {
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return nil, err
	}
	word, err := scanWord(wr.conn.QueryRow(ctx,
		`SELECT `+wordColumns+` FROM word WHERE book_id = $1 AND word_id = $2;`, id, wordID))
	return wordResult(word, err, "searching")
}

func (wr *WordsRepository) FindByOrder(ctx context.Context, book entity.BookKey, order int64) (*entity.Word, error) {
	if order < 0 {
		return nil, errorvalues.NotFound(errorvalues.EntityWord)
	}
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return nil, err
	}
	word, err := scanWord(wr.conn.QueryRow(ctx,
		`SELECT `+wordColumns+` FROM word WHERE book_id = $1 ORDER BY word_id OFFSET $2 LIMIT 1;`, id, order))
	return wordResult(word, err, "searching")
}

func (wr *WordsRepository) List(ctx context.Context, book entity.BookKey) ([]*entity.Word, error) {
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return nil, err
	}
	rows, err := wr.conn.Query(ctx, `SELECT `+wordColumns+` FROM word WHERE book_id = $1 ORDER BY word_id;`, id)
	if err != nil {
		return nil, fmt.Errorf("listing words error: %w", err)
	}
	defer rows.Close()
	words := make([]*entity.Word, 0)
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning word error: %w", err)
		}
		words = append(words, word)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("listing words error: %w", err)
	}
	return words, nil
}

func (wr *WordsRepository) Update(ctx context.Context, book entity.BookKey, wordID int64, patch *entity.WordPatch) (*entity.Word, error) {
	var set setClause
	if patch != nil {
		if patch.Spelling.Set {
			set.add("spelling", patch.Spelling.Value)
		}
		if patch.Translation.Set {
			set.add("translation", patch.Translation.Value)
		}
	}
	if set.empty() {
		return wr.Find(ctx, book, wordID)
	}
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return nil, err
	}
	query := `UPDATE word SET ` + set.String() +
		` WHERE book_id = ` + set.arg(id) + ` AND word_id = ` + set.arg(wordID) +
		` RETURNING ` + wordColumns + `;`
	word, err := scanWord(wr.conn.QueryRow(ctx, query, set.args...))
	return wordResult(word, err, "updating")
}

func (wr *WordsRepository) Delete(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error) {
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return nil, err
	}
	word, err := scanWord(wr.conn.QueryRow(ctx,
		`DELETE FROM word WHERE book_id = $1 AND word_id = $2 RETURNING `+wordColumns+`;`, id, wordID))
	return wordResult(word, err, "deleting")
}

func (wr *WordsRepository) DeleteAll(ctx context.Context, book entity.BookKey) (int64, error) {
	id, err := wr.bookID(ctx, book)
	if err != nil {
		return 0, err
	}
	ct, err := wr.conn.Exec(ctx, `DELETE FROM word WHERE book_id = $1;`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting words error: %w", err)
	}
	return ct.RowsAffected(), nil
}
