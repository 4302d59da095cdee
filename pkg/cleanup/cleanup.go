package cleanup

import (
	"log/slog"
	"os"
	"os/signal"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs registered jobs in reverse registration order, so resources
// opened first are released last. Jobs run once; the registry is emptied.
func CleanUp() {
	mu.Lock()
	pending := jobs
	jobs = nil
	mu.Unlock()
	for i := len(pending) - 1; i >= 0; i-- {
		j := pending[i]
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job finished with error", slog.String("job", j.Name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("cleaned", slog.String("job", j.Name))
	}
}

// CleanUpOnSignal runs CleanUp once one of sigs arrives. The returned
// channel is closed after every job has finished.
func CleanUpOnSignal(sigs ...os.Signal) <-chan struct{} {
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, sigs...)
	go func() {
		sig := <-quit
		signal.Stop(quit)
		slog.Info("shutting down", slog.String("signal", sig.String()))
		CleanUp()
		close(done)
	}()
	return done
}
