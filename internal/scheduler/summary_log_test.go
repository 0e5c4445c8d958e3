package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akupelikilinc/TalhaBookLib/internal/stats"
)

type staticSummarySource struct {
	summary stats.Summary
	err     error
}

func (s *staticSummarySource) Summary(now time.Time) (stats.Summary, error) {
	return s.summary, s.err
}

func TestSummaryLogScheduler_StartStop(t *testing.T) {
	s := NewSummaryLogScheduler(&staticSummarySource{}, "0 8 * * *")

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	// A second start is a no-op
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())

	// A second stop is a no-op
	s.Stop()
}

func TestSummaryLogScheduler_InvalidSchedule(t *testing.T) {
	s := NewSummaryLogScheduler(&staticSummarySource{}, "not a schedule")

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestSummaryLogScheduler_ContextCancelStops(t *testing.T) {
	s := NewSummaryLogScheduler(&staticSummarySource{}, "0 8 * * *")

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	require.True(t, s.IsRunning())

	cancel()

	assert.Eventually(t, func() bool {
		return !s.IsRunning()
	}, time.Second, 10*time.Millisecond)
}
