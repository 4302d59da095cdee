package service

import (
	"context"
	"fmt"

	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
)

type BookService struct {
	repo repository.BooksRepositoryI
}

func NewBookService(booksRepo repository.BooksRepositoryI) *BookService {
	return &BookService{
		repo: booksRepo,
	}
}

func (bs *BookService) List(ctx context.Context) ([]*entity.Book, error) {
	books, err := bs.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books error: %w", err)
	}
	return books, nil
}

func (bs *BookService) Get(ctx context.Context, key entity.BookKey) (*entity.Book, error) {
	book, err := bs.repo.Find(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("searching book %s error: %w", key, err)
	}
	return book, nil
}

func (bs *BookService) Create(ctx context.Context, req *CreateBookRequest) (*entity.Book, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	book, err := bs.repo.Create(ctx, &entity.NewBook{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("creating book error: %w", err)
	}
	return book, nil
}

func (bs *BookService) Update(ctx context.Context, key entity.BookKey, patch *entity.BookPatch) (*entity.Book, error) {
	if patch == nil {
		patch = &entity.BookPatch{}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	book, err := bs.repo.Update(ctx, key, patch)
	if err != nil {
		return nil, fmt.Errorf("updating book %s error: %w", key, err)
	}
	return book, nil
}

func (bs *BookService) Delete(ctx context.Context, key entity.BookKey) (*entity.Book, error) {
	book, err := bs.repo.Delete(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("deleting book %s error: %w", key, err)
	}
	return book, nil
}
