package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/limbo/wordbook/internal/metrics"
	"github.com/robfig/cron/v3"
)

type DayEvaluator interface {
	EvaluateDay(ctx context.Context, day time.Time) (int64, error)
}

// EvaluationScheduler closes study days on a cron schedule: every run
// records the results of the day that just ended and starts a new one.
type EvaluationScheduler struct {
	evaluator DayEvaluator
	schedule  string
	timeout   time.Duration
	now       func() time.Time

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

func NewEvaluationScheduler(evaluator DayEvaluator, schedule string) *EvaluationScheduler {
	return &EvaluationScheduler{
		evaluator: evaluator,
		schedule:  schedule,
		timeout:   time.Minute,
		now:       time.Now,
		cron:      cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

func (s *EvaluationScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	if _, err := s.cron.AddFunc(s.schedule, s.run); err != nil {
		return fmt.Errorf("invalid evaluation schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.isRunning = true
	slog.Info("evaluation scheduler started", slog.String("schedule", s.schedule))
	return nil
}

// Stop waits for a running evaluation to finish.
func (s *EvaluationScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.isRunning = false
	slog.Info("evaluation scheduler stopped")
}

func (s *EvaluationScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.RunNow(ctx)
}

// RunNow evaluates the day that just closed.
func (s *EvaluationScheduler) RunNow(ctx context.Context) (int64, error) {
	day := ClosedDay(s.now())
	n, err := s.evaluator.EvaluateDay(ctx, day)
	if err != nil {
		metrics.EvaluationRunsTotal.WithLabelValues("error").Inc()
		slog.Error("daily evaluation failed", slog.String("day", day.Format(time.DateOnly)), slog.String("error", err.Error()))
		return 0, err
	}
	metrics.EvaluationRunsTotal.WithLabelValues("ok").Inc()
	metrics.EvaluatedPlansTotal.Add(float64(n))
	slog.Info("daily evaluation finished", slog.String("day", day.Format(time.DateOnly)), slog.Int64("plans", n))
	return n, nil
}

// ClosedDay returns the calendar day, in now's location, of the minute
// preceding now. A run at midnight closes the previous day.
func ClosedDay(now time.Time) time.Time {
	y, m, d := now.Add(-time.Minute).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
