package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/entity"
	"github.com/limbo/wordbook/pkg/httputil"
)

type CreateDailyPlanRequest struct {
	DailyGoal int64 `json:"daily_goal"`
}

// Daily plans always belong to the caller, the path names only the book.
func planScope(w http.ResponseWriter, r *http.Request, op string) (*entity.User, string, bool) {
	user, ok := caller(w, r)
	if !ok {
		return nil, "", false
	}
	book, err := bookNameParam(r)
	if err != nil {
		writeBadParam(w, GetLoggerFromCtx(r.Context()), op, err)
		return nil, "", false
	}
	return user, book, true
}

func (s *Server) ListDailyPlans(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, ok := caller(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plans, err := s.dailyPlanService.List(ctx, user.ID)
	if err != nil {
		writeServiceError(w, logger, "listing daily plans", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plans)
}

func (s *Server) GetDailyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "getting daily plan")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.dailyPlanService.Get(ctx, user.ID, book)
	if err != nil {
		writeServiceError(w, logger, "getting daily plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
}

func (s *Server) CreateDailyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "creating daily plan")
	if !ok {
		return
	}
	var req CreateDailyPlanRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadBody(w, logger, "creating daily plan", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.dailyPlanService.Create(ctx, user.ID, book, &service.CreateDailyPlanRequest{DailyGoal: req.DailyGoal})
	if err != nil {
		writeServiceError(w, logger, "creating daily plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("daily plan created", slog.String("book", book))
}

func (s *Server) EditDailyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "editing daily plan")
	if !ok {
		return
	}
	var patch entity.DailyPlanPatch
	if err := decodeBody(r, &patch); err != nil {
		writeBadBody(w, logger, "editing daily plan", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.dailyPlanService.Update(ctx, user.ID, book, &patch)
	if err != nil {
		writeServiceError(w, logger, "editing daily plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("daily plan edited", slog.String("book", book))
}

func (s *Server) DeleteDailyPlan(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "deleting daily plan")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.dailyPlanService.Delete(ctx, user.ID, book)
	if err != nil {
		writeServiceError(w, logger, "deleting daily plan", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("daily plan deleted", slog.String("book", book))
}

func (s *Server) TodayWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "getting daily word")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	word, err := s.dailyPlanService.TodayWord(ctx, user.ID, book)
	if err != nil {
		writeServiceError(w, logger, "getting daily word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, word)
}

func (s *Server) SubmitWord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "submitting daily word")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	plan, err := s.dailyPlanService.SubmitWord(ctx, user.ID, book)
	if err != nil {
		writeServiceError(w, logger, "submitting daily word", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, plan)
	logger.Info("daily word submitted", slog.String("book", book), slog.Int64("progress", plan.Progress))
}

func (s *Server) ListEvaluations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, book, ok := planScope(w, r, "listing evaluations")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()
	evaluations, err := s.dailyPlanService.Evaluations(ctx, user.ID, book)
	if err != nil {
		writeServiceError(w, logger, "listing evaluations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, evaluations)
}
