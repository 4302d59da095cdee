package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evaluatorStub struct {
	days []time.Time
	n    int64
	err  error
}

func (e *evaluatorStub) EvaluateDay(_ context.Context, day time.Time) (int64, error) {
	e.days = append(e.days, day)
	return e.n, e.err
}

func TestClosedDay(t *testing.T) {
	midnight := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ClosedDay(midnight))
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), ClosedDay(midnight.Add(13*time.Hour)))

	msk := time.FixedZone("MSK", 3*3600)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ClosedDay(time.Date(2024, 3, 2, 0, 0, 30, 0, msk)))
}

func TestRunNow(t *testing.T) {
	stub := &evaluatorStub{n: 3}
	s := NewEvaluationScheduler(stub, "0 0 * * *")
	s.now = func() time.Time { return time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC) }

	n, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, []time.Time{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}, stub.days)

	stub.err = errors.New("db error")
	_, err = s.RunNow(context.Background())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	t.Run("bad schedule", func(t *testing.T) {
		s := NewEvaluationScheduler(&evaluatorStub{}, "every day")
		assert.Error(t, s.Start())
	})
	t.Run("started and stopped", func(t *testing.T) {
		s := NewEvaluationScheduler(&evaluatorStub{}, "0 0 * * *")
		require.NoError(t, s.Start())
		require.NoError(t, s.Start())
		assert.Len(t, s.cron.Entries(), 1)
		s.Stop()
		s.Stop()
	})
}
