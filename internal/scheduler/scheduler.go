// Package scheduler runs the periodic fetch and rescore cycle.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron    *cron.Cron
	loc     *time.Location
	entryID cron.EntryID
	running sync.Mutex
}

// New creates a scheduler in the given timezone, falling back to UTC when the
// zone is unknown.
func New(timezone string) *Scheduler {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		slog.Warn("unknown timezone, using UTC", "timezone", timezone, "error", err)
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		loc:  loc,
	}
}

// Validate checks a standard five-field cron expression or descriptor.
func Validate(expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", expr, err)
	}
	return nil
}

// Schedule replaces the scheduled job. A run that fires while the previous one
// is still going is skipped.
func (s *Scheduler) Schedule(expr string, job func()) error {
	if s.entryID != 0 {
		s.cron.Remove(s.entryID)
	}

	id, err := s.cron.AddFunc(expr, func() {
		if !s.running.TryLock() {
			slog.Warn("previous run still in progress, skipping")
			return
		}
		defer s.running.Unlock()
		job()
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	s.entryID = id
	return nil
}

// Next returns the next activation time, zero when nothing is scheduled.
func (s *Scheduler) Next() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

func (s *Scheduler) Location() *time.Location {
	return s.loc
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and returns a context done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
