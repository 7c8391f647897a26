package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/TirthDesai-Ascensus/BookStore/internal/config"
	"github.com/TirthDesai-Ascensus/BookStore/internal/database/books"
	"github.com/TirthDesai-Ascensus/BookStore/internal/entities"
)

// CatalogReader provides read access to the book catalog.
type CatalogReader interface {
	GetAllBooks() ([]entities.Book, error)
}

// StatsScheduler periodically logs a snapshot of catalog size and distinct
// author count. Purely observational, never writes.
type StatsScheduler struct {
	catalog CatalogReader
	cfg     config.StatsSnapshot

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewStatsScheduler creates a new scheduler instance
func NewStatsScheduler(catalog CatalogReader, cfg config.StatsSnapshot) *StatsScheduler {
	return &StatsScheduler{
		catalog: catalog,
		cfg:     cfg,
		cron:    cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if the snapshot is enabled
func (s *StatsScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.cfg.Enabled {
		log.Printf("Stats snapshot scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.runSnapshot()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule stats snapshot with '%s': %w", s.cfg.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Stats snapshot scheduler: started with schedule '%s'", s.cfg.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *StatsScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Stats snapshot scheduler: stopped")
}

// RunNow triggers an immediate snapshot
func (s *StatsScheduler) RunNow() {
	go s.runSnapshot()
}

// IsRunning returns whether the scheduler is active
func (s *StatsScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next snapshot will occur
func (s *StatsScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *StatsScheduler) runSnapshot() {
	startTime := time.Now()

	allBooks, err := s.catalog.GetAllBooks()
	if err != nil {
		log.Printf("Stats snapshot: failed to read catalog: %v", err)
		return
	}

	authors := books.DistinctAuthors(allBooks)
	log.Printf("Stats snapshot: %d books by %d distinct authors (took %v)",
		len(allBooks), len(authors), time.Since(startTime).Round(time.Millisecond))
}
