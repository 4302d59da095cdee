package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/httputil"
)

type RegisterRequest struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Nickname *string `json:"nickname"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token exchanges form credentials for a bearer token (OAuth2 password grant).
func (s *Server) Token(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		writeBadBody(w, logger, "token", err)
		return
	}
	if grant := r.PostFormValue("grant_type"); grant != "" && grant != "password" {
		logger.Error("token error: unsupported grant type", slog.String("grant_type", grant))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unsupported grant type", nil)
		return
	}
	name, pass := r.PostFormValue("username"), r.PostFormValue("password")
	if name == "" || pass == "" {
		logger.Error("token error: missing credentials")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "username and password are required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, name, pass)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrNotFound), errors.Is(err, errorvalues.ErrWrongPassword):
			logger.Error("token error: wrong credentials")
			httputil.WriteUnauthorized(w, "Incorrect username or password")
		default:
			logger.Error("token error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.CreateToken(user.ID, s.tokenTTL)
	if err != nil {
		logger.Error("token error: creating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	logger.Info("token issued", slog.Int64("uid", user.ID))
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, logger, "registering", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
		Nickname: req.Nickname,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("successful registration", slog.Int64("uid", user.ID), slog.Bool("is_admin", user.IsAdmin))
}

// caller returns the authenticated user. Handlers behind AuthMiddleware
// always have one.
func caller(w http.ResponseWriter, r *http.Request) (*entity.User, bool) {
	user, ok := GetUserFromContext(r.Context())
	if !ok {
		GetLoggerFromCtx(r.Context()).Error("no authenticated user in request context")
		httputil.WriteUnauthorized(w, credentialsMessage)
	}
	return user, ok
}

func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) EditMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := caller(w, r)
	if !ok {
		return
	}
	var patch entity.UserPatch
	if err := decodeBody(r, &patch); err != nil {
		writeBadBody(w, logger, "editing user", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	updated, err := s.userService.Update(ctx, user.ID, &patch)
	if err != nil {
		writeServiceError(w, logger, "editing user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("user edited")
}

func (s *Server) DeleteMe(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	deleted, err := s.userService.Delete(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "deleting user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, deleted)
	logger.Info("user deleted")
}

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	users, err := s.userService.List(ctx)
	if err != nil {
		writeServiceError(w, logger, "listing users", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, users)
}
