package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/limbo/wordbook/pkg/entity"
)

var errEmptyParam = errors.New("empty path parameter")

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}

func positiveIDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, raw)
	}
	return id, nil
}

// bookKeyParam serves both /book/{name} and /book-by-id/{id} routes.
func bookKeyParam(r *http.Request) (entity.BookKey, error) {
	if name := chi.URLParam(r, "name"); name != "" {
		return entity.BookByName(name), nil
	}
	id, err := positiveIDParam(r, "id")
	if err != nil {
		return entity.BookKey{}, err
	}
	return entity.BookByID(id), nil
}

func bookNameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "book")
	if name == "" {
		return "", fmt.Errorf("book: %w", errEmptyParam)
	}
	return name, nil
}
