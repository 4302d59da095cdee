package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/httputil"
)

type CreateWordRequest struct {
	Spelling    string  `json:"spelling"`
	Translation *string `json:"translation"`
}

type ClearWordsResponse struct {
	Deleted int64 `json:"deleted"`
}

func wordParams(r *http.Request) (entity.BookKey, int64, error) {
	book, err := bookNameParam(r)
	if err != nil {
		return entity.BookKey{}, 0, err
	}
	wordID, err := positiveIDParam(r, "word_id")
	if err != nil {
		return entity.BookKey{}, 0, err
	}
	return entity.BookByName(book), wordID, nil
}

func (s *Server) ListWords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, err := bookNameParam(r)
	if err != nil {
		writeBadParam(w, logger, "listing words", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	words, err := s.wordService.List(ctx, entity.BookByName(book))
	if err != nil {
		writeServiceError(w, logger, "listing words", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, words)
}

func (s *Server) ClearWords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, err := bookNameParam(r)
	if err != nil {
		writeBadParam(w, logger, "clearing words", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	n, err := s.wordService.Clear(ctx, entity.BookByName(book))
	if err != nil {
		writeServiceError(w, logger, "clearing words", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ClearWordsResponse{Deleted: n})
	logger.Info("words cleared", slog.String("book", book), slog.Int64("deleted", n))
}

func (s *Server) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, wordID, err := wordParams(r)
	if err != nil {
		writeBadParam(w, logger, "getting word", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	word, err := s.wordService.Get(ctx, book, wordID)
	if err != nil {
		writeServiceError(w, logger, "getting word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, word)
}

func (s *Server) CreateWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, err := bookNameParam(r)
	if err != nil {
		writeBadParam(w, logger, "creating word", err)
		return
	}
	var req CreateWordRequest
	if err = decodeBody(r, &req); err != nil {
		writeBadBody(w, logger, "creating word", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	word, err := s.wordService.Create(ctx, entity.BookByName(book), &service.CreateWordRequest{
		Spelling:    req.Spelling,
		Translation: req.Translation,
	})
	if err != nil {
		writeServiceError(w, logger, "creating word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, word)
	logger.Info("word created", slog.Int64("book_id", word.BookID), slog.Int64("word_id", word.WordID))
}

func (s *Server) EditWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, wordID, err := wordParams(r)
	if err != nil {
		writeBadParam(w, logger, "editing word", err)
		return
	}
	var patch entity.WordPatch
	if err = decodeBody(r, &patch); err != nil {
		writeBadBody(w, logger, "editing word", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	word, err := s.wordService.Update(ctx, book, wordID, &patch)
	if err != nil {
		writeServiceError(w, logger, "editing word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, word)
	logger.Info("word edited", slog.Int64("book_id", word.BookID), slog.Int64("word_id", word.WordID))
}

func (s *Server) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	book, wordID, err := wordParams(r)
	if err != nil {
		writeBadParam(w, logger, "deleting word", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	word, err := s.wordService.Delete(ctx, book, wordID)
	if err != nil {
		writeServiceError(w, logger, "deleting word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, word)
	logger.Info("word deleted", slog.Int64("book_id", word.BookID), slog.Int64("word_id", word.WordID))
}
