// Package scheduler resets the word list to its seed words on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Resetter drops all rows and reseeds the word list.
type Resetter interface {
	Reset() error
}

// ResetScheduler periodically resets the word list, e.g. for public demo instances.
type ResetScheduler struct {
	resetter Resetter
	schedule string

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
	lastErr   error
	lastRun   time.Time
}

// NewResetScheduler validates schedule and prepares a scheduler. It does not start it.
func NewResetScheduler(resetter Resetter, schedule string) (*ResetScheduler, error) {
	if err := ValidateCronSchedule(schedule); err != nil {
		return nil, fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return &ResetScheduler{
		resetter: resetter,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(parser)),
	}, nil
}

// Start registers the reset job and starts the cron runner. It stops when ctx is done.
func (s *ResetScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, s.RunNow)
	if err != nil {
		return fmt.Errorf("failed to schedule reset job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule, time.Now())
	log.Printf("Reset scheduler: started with schedule '%s' (%s). Next run: %v",
		s.schedule, GetCronDescription(s.schedule), nextRun)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running reset to finish and stops the scheduler.
func (s *ResetScheduler) Stop() {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return
	}
	s.isRunning = false
	s.cron.Remove(s.entryID)
	stopped := s.cron.Stop()
	s.mu.Unlock()

	// A reset in flight takes s.mu to record its result, so wait unlocked.
	<-stopped.Done()

	log.Printf("Reset scheduler: stopped")
}

// RunNow performs a reset synchronously and records its outcome.
func (s *ResetScheduler) RunNow() {
	started := time.Now()
	err := s.resetter.Reset()

	s.mu.Lock()
	s.lastRun = started
	s.lastErr = err
	s.mu.Unlock()

	if err != nil {
		log.Printf("Reset scheduler: reset failed: %v", err)
		return
	}
	log.Printf("Reset scheduler: word list reset in %v", time.Since(started).Round(time.Millisecond))
}

// IsRunning returns whether the scheduler is active
func (s *ResetScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// LastRun returns when the last reset started and how it ended. Zero time if none ran yet.
func (s *ResetScheduler) LastRun() (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRun, s.lastErr
}

// NextRunTime returns when the next reset will occur, or nil when stopped.
func (s *ResetScheduler) NextRunTime() *time.Time {
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
