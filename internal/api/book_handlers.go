package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/httputil"
)

type CreateBookRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (s *Server) ListBooks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	books, err := s.bookService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing books", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, books)
}

func (s *Server) GetBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	key, err := bookKeyParam(r)
	if err != nil {
		writeBadParam(w, logger, "getting book", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	book, err := s.bookService.Get(ctx, key)
	if err != nil {
		writeServiceError(w, logger, "getting book", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, book)
}

func (s *Server) CreateBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateBookRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, logger, "creating book", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	book, err := s.bookService.Create(ctx, &service.CreateBookRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, logger, "creating book", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, book)
	logger.Info("book created", slog.Int64("book_id", book.ID))
}

func (s *Server) EditBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	key, err := bookKeyParam(r)
	if err != nil {
		writeBadParam(w, logger, "editing book", err)
		return
	}
	var patch entity.BookPatch
	if err = decodeBody(r, &patch); err != nil {
		writeBadBody(w, logger, "editing book", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	book, err := s.bookService.Update(ctx, key, &patch)
	if err != nil {
		writeServiceError(w, logger, "editing book", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, book)
	logger.Info("book edited", slog.Int64("book_id", book.ID))
}

func (s *Server) DeleteBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	key, err := bookKeyParam(r)
	if err != nil {
		writeBadParam(w, logger, "deleting book", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	book, err := s.bookService.Delete(ctx, key)
	if err != nil {
		writeServiceError(w, logger, "deleting book", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, book)
	logger.Info("book deleted", slog.Int64("book_id", book.ID))
}
