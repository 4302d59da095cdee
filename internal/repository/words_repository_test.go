package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordRowColumns = []string{"book_id", "word_id", "spelling", "translation"}

var resolveBookByName = regexp.QuoteMeta(`SELECT book_id FROM book WHERE name = $1;`)

func wordRow(w *entity.Word) *pgxmock.Rows {
	return pgxmock.NewRows(wordRowColumns).AddRow(w.BookID, w.WordID, w.Spelling, w.Translation)
}

func expectBook(conn pgxmock.PgxPoolIface, name string, id int64) {
	conn.ExpectQuery(resolveBookByName).WithArgs(name).WillReturnRows(pgxmock.NewRows([]string{"book_id"}).AddRow(id))
}

func TestWordsCreateSchema(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	conn.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS word`)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	conn.ExpectExec(regexp.QuoteMeta(`CREATE OR REPLACE FUNCTION word_assign_id()`)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	conn.ExpectExec(regexp.QuoteMeta(`CREATE OR REPLACE FUNCTION word_count_changed()`)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	conn.ExpectExec(regexp.QuoteMeta(`DROP TRIGGER IF EXISTS word_assign_id ON word;`)).WillReturnResult(pgxmock.NewResult("DROP", 0))
	conn.ExpectExec(regexp.QuoteMeta(`CREATE TRIGGER word_assign_id BEFORE INSERT ON word`)).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	conn.ExpectExec(regexp.QuoteMeta(`DROP TRIGGER IF EXISTS word_count_changed ON word;`)).WillReturnResult(pgxmock.NewResult("DROP", 0))
	conn.ExpectExec(regexp.QuoteMeta(`CREATE TRIGGER word_count_changed AFTER INSERT OR DELETE ON word`)).
		WillReturnError(errors.New("permission denied"))
	assert.ErrorContains(t, repo.CreateSchema(context.Background()), "permission denied")
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestCreateWord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	query := regexp.QuoteMeta(`INSERT INTO word (book_id, spelling, translation)
		SELECT book_id, $2::text, $3::text FROM book WHERE name = $1`)
	word := &entity.NewWord{Spelling: "cat", Translation: strPtr("кот")}

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "created",
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("Basics", "cat", word.Translation).
					WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 1, Spelling: "cat", Translation: word.Translation}))
			},
		},
		{
			Desc:  "book not found",
			Error: errorvalues.NotFound(errorvalues.EntityBook),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("Basics", "cat", word.Translation).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "duplicate spelling",
			Error: errorvalues.ErrDuplicateRecord,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("Basics", "cat", word.Translation).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating word error: db error"),
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs("Basics", "cat", word.Translation).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			created, err := repo.Create(context.Background(), entity.BookByName("Basics"), word)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), created.WordID)
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindWord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT book_id, word_id, spelling, translation FROM word WHERE book_id = $1 AND word_id = $2;`)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).
			WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 2, Spelling: "dog"}))
		word, err := repo.Find(ctx, entity.BookByName("Basics"), 2)
		require.NoError(t, err)
		assert.Equal(t, "dog", word.Spelling)
	})
	t.Run("book missing", func(t *testing.T) {
		conn.ExpectQuery(resolveBookByName).WithArgs("Nope").WillReturnError(pgx.ErrNoRows)
		_, err := repo.Find(ctx, entity.BookByName("Nope"), 2)
		entityName, _ := errorvalues.MissingEntity(err)
		assert.Equal(t, errorvalues.EntityBook, entityName)
	})
	t.Run("word missing", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(99)).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Find(ctx, entity.BookByName("Basics"), 99)
		entityName, _ := errorvalues.MissingEntity(err)
		assert.Equal(t, errorvalues.EntityWord, entityName)
	})
	t.Run("book by id", func(t *testing.T) {
		conn.ExpectQuery(regexp.QuoteMeta(`SELECT book_id FROM book WHERE book_id = $1;`)).WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows([]string{"book_id"}).AddRow(int64(1)))
		conn.ExpectQuery(query).WithArgs(int64(1), int64(1)).
			WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 1, Spelling: "cat"}))
		word, err := repo.Find(ctx, entity.BookByID(1), 1)
		require.NoError(t, err)
		assert.Equal(t, "cat", word.Spelling)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindWordByOrder(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	query := regexp.QuoteMeta(`FROM word WHERE book_id = $1 ORDER BY word_id OFFSET $2 LIMIT 1;`)
	ctx := context.Background()

	t.Run("third word", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(2)).
			WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 5, Spelling: "bird"}))
		word, err := repo.FindByOrder(ctx, entity.BookByName("Basics"), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(5), word.WordID)
	})
	t.Run("past the end", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(query).WithArgs(int64(1), int64(10)).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByOrder(ctx, entity.BookByName("Basics"), 10)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	t.Run("negative order", func(t *testing.T) {
		_, err := repo.FindByOrder(ctx, entity.BookByName("Basics"), -1)
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListWords(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	expectBook(conn, "Basics", 1)
	conn.ExpectQuery(regexp.QuoteMeta(`FROM word WHERE book_id = $1 ORDER BY word_id;`)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(wordRowColumns).
			AddRow(int64(1), int64(1), "cat", strPtr("кот")).
			AddRow(int64(1), int64(3), "dog", (*string)(nil)))
	words, err := repo.List(context.Background(), entity.BookByName("Basics"))
	require.NoError(t, err)
	require.Len(t, words, 2)
	assert.Equal(t, int64(3), words[1].WordID)
	assert.Nil(t, words[1].Translation)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUpdateWord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	ctx := context.Background()

	t.Run("translation set", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE word SET translation = $1 WHERE book_id = $2 AND word_id = $3 RETURNING`)).
			WithArgs(strPtr("кошка"), int64(1), int64(1)).
			WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 1, Spelling: "cat", Translation: strPtr("кошка")}))
		word, err := repo.Update(ctx, entity.BookByName("Basics"), 1, &entity.WordPatch{Translation: entity.Some(strPtr("кошка"))})
		require.NoError(t, err)
		assert.Equal(t, "кошка", *word.Translation)
	})
	t.Run("spelling taken", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE word SET spelling = $1 WHERE book_id = $2 AND word_id = $3`)).
			WithArgs("dog", int64(1), int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Update(ctx, entity.BookByName("Basics"), 1, &entity.WordPatch{Spelling: entity.Some("dog")})
		assert.ErrorIs(t, err, errorvalues.ErrDuplicateRecord)
	})
	t.Run("word missing", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(regexp.QuoteMeta(`UPDATE word SET spelling = $1`)).
			WithArgs("dog", int64(1), int64(8)).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Update(ctx, entity.BookByName("Basics"), 8, &entity.WordPatch{Spelling: entity.Some("dog")})
		entityName, _ := errorvalues.MissingEntity(err)
		assert.Equal(t, errorvalues.EntityWord, entityName)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteWords(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewWordsRepoWithConn(conn)
	ctx := context.Background()

	t.Run("single word", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectQuery(regexp.QuoteMeta(`DELETE FROM word WHERE book_id = $1 AND word_id = $2 RETURNING`)).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(wordRow(&entity.Word{BookID: 1, WordID: 2, Spelling: "dog"}))
		word, err := repo.Delete(ctx, entity.BookByName("Basics"), 2)
		require.NoError(t, err)
		assert.Equal(t, "dog", word.Spelling)
	})
	t.Run("all words", func(t *testing.T) {
		expectBook(conn, "Basics", 1)
		conn.ExpectExec(regexp.QuoteMeta(`DELETE FROM word WHERE book_id = $1;`)).WithArgs(int64(1)).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		n, err := repo.DeleteAll(ctx, entity.BookByName("Basics"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
	t.Run("all words of missing book", func(t *testing.T) {
		conn.ExpectQuery(resolveBookByName).WithArgs("Nope").WillReturnError(pgx.ErrNoRows)
		_, err := repo.DeleteAll(ctx, entity.BookByName("Nope"))
		assert.ErrorIs(t, err, errorvalues.ErrNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
