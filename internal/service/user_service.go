package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/password"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(encoded, password string) error
	NeedsRehash(encoded string) bool
}

type UserService struct {
	repo   repository.UsersRepositoryI
	hasher PasswordHasher
}

func NewUserService(usersRepo repository.UsersRepositoryI, hasher PasswordHasher) *UserService {
	return &UserService{
		repo:   usersRepo,
		hasher: hasher,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := us.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	user, err := us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: passwordHash,
		Nickname:     req.Nickname,
		Email:        req.Email,
		Phone:        req.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("registering user %s error: %w", req.Name, err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, name, pass string) (*entity.User, error) {
	user, err := us.repo.Find(ctx, entity.UserByName(name))
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if err = us.hasher.Verify(user.PasswordHash, pass); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, errorvalues.ErrWrongPassword
		}
		return nil, fmt.Errorf("verifying password error: %w", err)
	}
	if us.hasher.NeedsRehash(user.PasswordHash) {
		us.rehash(ctx, user, pass)
	}
	return user, nil
}

// rehash stores the password under current hashing parameters. A failure
// doesn't fail the login, the old hash stays valid.
func (us *UserService) rehash(ctx context.Context, user *entity.User, pass string) {
	hash, err := us.hasher.Hash(pass)
	if err == nil {
		err = us.repo.UpdatePasswordHash(ctx, user.ID, hash)
	}
	if err != nil {
		slog.Warn("password rehash failed", slog.Int64("uid", user.ID), slog.String("error", err.Error()))
		return
	}
	user.PasswordHash = hash
}

func (us *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := us.repo.Find(ctx, entity.UserByID(id))
	if err != nil {
		return nil, fmt.Errorf("searching user error: %w", err)
	}
	return user, nil
}

func (us *UserService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := us.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users error: %w", err)
	}
	return users, nil
}

func (us *UserService) Update(ctx context.Context, id int64, patch *entity.UserPatch) (*entity.User, error) {
	if patch == nil {
		patch = &entity.UserPatch{}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	changes := &entity.UserChanges{
		Name:     patch.Name,
		Nickname: patch.Nickname,
		Email:    patch.Email,
		Phone:    patch.Phone,
	}
	if patch.Password.Set {
		hash, err := us.hasher.Hash(patch.Password.Value)
		if err != nil {
			return nil, fmt.Errorf("hashing password error: %w", err)
		}
		changes.PasswordHash = entity.Some(hash)
	}
	user, err := us.repo.Update(ctx, entity.UserByID(id), changes)
	if err != nil {
		return nil, fmt.Errorf("updating user error: %w", err)
	}
	return user, nil
}

func (us *UserService) Delete(ctx context.Context, id int64) (*entity.User, error) {
	user, err := us.repo.Delete(ctx, entity.UserByID(id))
	if err != nil {
		return nil, fmt.Errorf("deleting user error: %w", err)
	}
	return user, nil
}
