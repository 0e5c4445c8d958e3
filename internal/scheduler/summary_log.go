// Package scheduler runs the optional periodic summary snapshot: on a cron
// schedule it recomputes the reading-log summary and writes it to the log,
// giving the server journal a history of how the library grew.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/akupelikilinc/TalhaBookLib/internal/stats"
)

// SummarySource produces the current collection summary.
type SummarySource interface {
	Summary(now time.Time) (stats.Summary, error)
}

// SummaryLogScheduler logs a summary snapshot on a cron schedule.
type SummaryLogScheduler struct {
	source   SummarySource
	schedule string

	cron       *cron.Cron
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewSummaryLogScheduler creates a new scheduler instance.
func NewSummaryLogScheduler(source SummarySource, schedule string) *SummaryLogScheduler {
	return &SummaryLogScheduler{
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *SummaryLogScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if _, err := s.cron.AddFunc(s.schedule, s.logSnapshot); err != nil {
		return fmt.Errorf("invalid summary log schedule '%s': %w", s.schedule, err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true
	log.Printf("Summary log scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running snapshot.
func (s *SummaryLogScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Printf("Summary log scheduler: stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *SummaryLogScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *SummaryLogScheduler) logSnapshot() {
	summary, err := s.source.Summary(time.Now())
	if err != nil {
		log.Printf("Summary snapshot: failed to compute summary: %v", err)
		return
	}

	log.Printf("Summary snapshot: %d books, %d pages, avg rating %.2f, %d this month, top category %q, favorite %q",
		summary.TotalBooks,
		summary.TotalPages,
		summary.AvgRating,
		summary.MonthlyBooks,
		summary.TopCategory,
		summary.FavoriteBook,
	)
}
