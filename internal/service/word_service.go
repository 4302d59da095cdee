package service

import (
	"context"
	"fmt"

	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
)

type WordService struct {
	repo repository.WordsRepositoryI
}

func NewWordService(wordsRepo repository.WordsRepositoryI) *WordService {
	return &WordService{
		repo: wordsRepo,
	}
}

func (ws *WordService) List(ctx context.Context, book entity.BookKey) ([]*entity.Word, error) {
	words, err := ws.repo.List(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("listing words of book %s error: %w", book, err)
	}
	return words, nil
}

func (ws *WordService) Get(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error) {
	word, err := ws.repo.Find(ctx, book, wordID)
	if err != nil {
		return nil, fmt.Errorf("searching word %d of book %s error: %w", wordID, book, err)
	}
	return word, nil
}

func (ws *WordService) Create(ctx context.Context, book entity.BookKey, req *CreateWordRequest) (*entity.Word, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	word, err := ws.repo.Create(ctx, book, &entity.NewWord{
		Spelling:    req.Spelling,
		Translation: req.Translation,
	})
	if err != nil {
		return nil, fmt.Errorf("creating word in book %s error: %w", book, err)
	}
	return word, nil
}

func (ws *WordService) Update(ctx context.Context, book entity.BookKey, wordID int64, patch *entity.WordPatch) (*entity.Word, error) {
	if patch == nil {
		patch = &entity.WordPatch{}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	word, err := ws.repo.Update(ctx, book, wordID, patch)
	if err != nil {
		return nil, fmt.Errorf("updating word %d of book %s error: %w", wordID, book, err)
	}
	return word, nil
}

func (ws *WordService) Delete(ctx context.Context, book entity.BookKey, wordID int64) (*entity.Word, error) {
	word, err := ws.repo.Delete(ctx, book, wordID)
	if err != nil {
		return nil, fmt.Errorf("deleting word %d of book %s error: %w", wordID, book, err)
	}
	return word, nil
}

func (ws *WordService) Clear(ctx context.Context, book entity.BookKey) (int64, error) {
	n, err := ws.repo.DeleteAll(ctx, book)
	if err != nil {
		return 0, fmt.Errorf("clearing book %s error: %w", book, err)
	}
	return n, nil
}
