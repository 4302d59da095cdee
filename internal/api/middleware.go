package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/httputil"
)

type contextKey int

const (
	requestIDContextKey contextKey = iota
	loggerContextKey
	userContextKey
)

const credentialsMessage = "Could not validate credentials"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		w.Header().Set("X-Request-ID", reqID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerContextKey, logger)))
	})
}

// LoggerExtensionMiddleware adds the authenticated user id to the request logger.
func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if user, ok := GetUserFromContext(r.Context()); ok {
			logger = logger.With(slog.Int64("uid", user.ID))
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerContextKey, logger)))
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: no bearer token")
			httputil.WriteUnauthorized(w, credentialsMessage)
			return
		}
		uid, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			logger.Error("auth failed: invalid token", slog.String("error", err.Error()))
			httputil.WriteUnauthorized(w, credentialsMessage)
			return
		}
		// Token may outlive its user
		ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
		defer cancel()
		user, err := s.userService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrNotFound) {
				logger.Error("auth failed: user doesn't exist", slog.Int64("uid", uid))
				httputil.WriteUnauthorized(w, credentialsMessage)
				return
			}
			logger.Error("auth failed: error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdminMiddleware answers non-admins the same way as unauthenticated callers.
func (s *Server) RequireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUserFromContext(r.Context())
		if !ok || !user.IsAdmin {
			GetLoggerFromCtx(r.Context()).Error("auth failed: " + errorvalues.ErrNotAdmin.Error())
			httputil.WriteUnauthorized(w, credentialsMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	scheme, value, found := strings.Cut(token, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || value == "" {
		return "", errorvalues.ErrInvalidToken
	}
	return value, nil
}

func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userContextKey).(*entity.User)
	return user, ok && user != nil
}
