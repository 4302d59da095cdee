package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/stretchr/testify/assert"
)

var basics = &entity.Book{ID: 1, Name: "Basics", WordsCount: 3}

func TestGetBook(t *testing.T) {
	ts := newTestServer(t, &tokensStub{})

	testCases := []struct {
		Desc         string
		Params       []string
		StatusCode   int
		Detail       string
		MockPrepFunc func()
	}{
		{
			Desc:       "by name",
			Params:     []string{"name", "Basics"},
			StatusCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.books.EXPECT().Get(gomock.Any(), entity.BookByName("Basics")).Return(basics, nil)
			},
		},
		{
			Desc:       "by id",
			Params:     []string{"id", "1"},
			StatusCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.books.EXPECT().Get(gomock.Any(), entity.BookByID(1)).Return(basics, nil)
			},
		},
		{
			Desc:       "missing book",
			Params:     []string{"name", "ghost"},
			StatusCode: http.StatusUnprocessableEntity,
			Detail:     "Incorrect book",
			MockPrepFunc: func() {
				ts.books.EXPECT().Get(gomock.Any(), entity.BookByName("ghost")).Return(nil, errorvalues.NotFound(errorvalues.EntityBook))
			},
		},
		{
			Desc:         "invalid id",
			Params:       []string{"id", "first"},
			StatusCode:   http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "zero id",
			Params:       []string{"id", "0"},
			StatusCode:   http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := withParams(httptest.NewRequest(http.MethodGet, "/api/book", nil), tc.Params...)
			ts.GetBook(rr, asUser(req, reader))
			assert.Equal(t, tc.StatusCode, rr.Result().StatusCode)
			if tc.Detail != "" {
				assert.Equal(t, tc.Detail, decodeError(t, rr).Message)
			}
			if tc.StatusCode == http.StatusOK {
				assert.Equal(t, *basics, decodeBody[entity.Book](t, rr))
			}
		})
	}
}

func TestListBooks(t *testing.T) {
	ts := newTestServer(t, &tokensStub{})
	t.Run("listed", func(t *testing.T) {
		ts.books.EXPECT().List(gomock.Any()).Return([]*entity.Book{basics}, nil)
		rr := httptest.NewRecorder()
		ts.ListBooks(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.Len(t, decodeBody[[]entity.Book](t, rr), 1)
	})
	t.Run("empty", func(t *testing.T) {
		ts.books.EXPECT().List(gomock.Any()).Return([]*entity.Book{}, nil)
		rr := httptest.NewRecorder()
		ts.ListBooks(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))
		assert.JSONEq(t, "[]", rr.Body.String())
	})
	t.Run("service error", func(t *testing.T) {
		ts.books.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
		rr := httptest.NewRecorder()
		ts.ListBooks(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestCreateBook(t *testing.T) {
	ts := newTestServer(t, &tokensStub{})

	testCases := []struct {
		Desc         string
		Body         string
		StatusCode   int
		MockPrepFunc func()
	}{
		{
			Desc:       "created",
			Body:       `{"name":"Basics","description":null}`,
			StatusCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.books.EXPECT().Create(gomock.Any(), &service.CreateBookRequest{Name: "Basics"}).
					Return(&entity.Book{ID: 1, Name: "Basics"}, nil)
			},
		},
		{
			Desc:       "duplicate",
			Body:       `{"name":"Basics"}`,
			StatusCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				ts.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrDuplicateRecord)
			},
		},
		{
			Desc:         "invalid body",
			Body:         `name=Basics`,
			StatusCode:   http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(tc.Body))
			ts.CreateBook(rr, asUser(req, admin))
			assert.Equal(t, tc.StatusCode, rr.Result().StatusCode)
			if tc.StatusCode == http.StatusOK {
				assert.JSONEq(t, `{"book_id":1,"name":"Basics","description":null,"words_count":0}`, rr.Body.String())
			}
		})
	}
}

func TestEditBook(t *testing.T) {
	ts := newTestServer(t, &tokensStub{})
	t.Run("edited by id", func(t *testing.T) {
		ts.books.EXPECT().Update(gomock.Any(), entity.BookByID(1), gomock.Any()).
			DoAndReturn(func(_ any, _ entity.BookKey, patch *entity.BookPatch) (*entity.Book, error) {
				assert.Equal(t, entity.Some("Advanced"), patch.Name)
				assert.False(t, patch.Description.Set)
				return &entity.Book{ID: 1, Name: "Advanced"}, nil
			})
		rr := httptest.NewRecorder()
		req := withParams(httptest.NewRequest(http.MethodPatch, "/api/book-by-id/1", strings.NewReader(`{"name":"Advanced"}`)), "id", "1")
		ts.EditBook(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("name taken", func(t *testing.T) {
		ts.books.EXPECT().Update(gomock.Any(), entity.BookByName("Basics"), gomock.Any()).Return(nil, errorvalues.ErrDuplicateRecord)
		rr := httptest.NewRecorder()
		req := withParams(httptest.NewRequest(http.MethodPatch, "/api/book/Basics", strings.NewReader(`{"name":"Taken"}`)), "name", "Basics")
		ts.EditBook(rr, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Result().StatusCode)
		assert.Equal(t, "Duplicate records", decodeError(t, rr).Message)
	})
}

func TestDeleteBook(t *testing.T) {
	ts := newTestServer(t, &tokensStub{})
	t.Run("deleted", func(t *testing.T) {
		ts.books.EXPECT().Delete(gomock.Any(), entity.BookByName("Basics")).Return(basics, nil)
		rr := httptest.NewRecorder()
		ts.DeleteBook(rr, withParams(httptest.NewRequest(http.MethodDelete, "/api/book/Basics", nil), "name", "Basics"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("ghost", func(t *testing.T) {
		ts.books.EXPECT().Delete(gomock.Any(), entity.BookByName("ghost")).Return(nil, errorvalues.NotFound(errorvalues.EntityBook))
		rr := httptest.NewRecorder()
		ts.DeleteBook(rr, withParams(httptest.NewRequest(http.MethodDelete, "/api/book/ghost", nil), "name", "ghost"))
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Result().StatusCode)
		assert.Equal(t, "Incorrect book", decodeError(t, rr).Message)
	})
}
