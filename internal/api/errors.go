package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/wordbook/internal/error_values"
	"github.com/limbo/wordbook/pkg/httputil"
)

// writeServiceError maps an error returned by a service to the response.
// op prefixes the log line, e.g. "creating book".
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrNotFound):
		entity, ok := errorvalues.MissingEntity(err)
		if !ok {
			entity = "record"
		}
		logger.Error(op + " error: " + entity + " not found")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Incorrect "+entity, nil)
	case errors.Is(err, errorvalues.ErrDuplicateRecord):
		logger.Error(op + " error: duplicate record")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Duplicate records", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "Validation error", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func writeBadBody(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" error: invalid body", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}

func writeBadParam(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" error: invalid path parameter", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid path parameter", err)
}
