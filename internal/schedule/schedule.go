// Package schedule drives the weekly posting loop.
//
// The next fire time is a pure function of the wall clock and the schedule
// spec, re-derived from scratch after every fire. The scheduler keeps no
// "already fired" state: a run that finishes late simply recomputes from
// the current time, so it can neither double-fire for the same slot nor
// drift against the target weekday.
package schedule

import (
	"context"
	"time"

	"github.com/mkrogh/ufc-weekly-bot/internal/logger"
)

// Spec is the immutable weekly schedule: fire every week on Weekday at
// Hour:Minute in Loc. Loaded once at startup from validated configuration.
type Spec struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
	Loc     *time.Location
}

// NextFire returns the next instant strictly after now that falls on the
// spec's weekday at its hour and minute in its timezone.
//
// The candidate is today's slot in the target zone; daysAhead is the
// forward distance to the target weekday mod 7, bumped to a full week when
// today's slot has already passed. Calling NextFire twice with the same now
// yields the same result.
func NextFire(now time.Time, spec Spec) time.Time {
	local := now.In(spec.Loc)
	candidate := time.Date(local.Year(), local.Month(), local.Day(),
		spec.Hour, spec.Minute, 0, 0, spec.Loc)

	daysAhead := (int(spec.Weekday) - int(candidate.Weekday()) + 7) % 7
	if daysAhead == 0 && !candidate.After(now) {
		daysAhead = 7
	}

	return candidate.AddDate(0, 0, daysAhead)
}

// Scheduler sleeps until each fire time and invokes the pipeline.
type Scheduler struct {
	spec Spec
	run  func(context.Context) error
}

// New creates a Scheduler invoking run at every fire time.
func New(spec Spec, run func(context.Context) error) *Scheduler {
	return &Scheduler{spec: spec, run: run}
}

// Run loops until ctx is cancelled. A failed pipeline invocation is logged
// and the loop moves on to the next slot; cancellation interrupts the sleep
// without invoking the pipeline.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		next := NextFire(time.Now(), s.spec)
		logger.Info("scheduler waiting", logger.Fields{
			"next_fire": next.Format(time.RFC3339),
		})

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		logger.Info("scheduled fire", logger.Fields{
			"target": next.Format(time.RFC3339),
		})
		if err := s.run(ctx); err != nil {
			logger.Error("scheduled run failed", nil, err)
			logger.IncrCounter("schedule.run_errors")
		} else {
			logger.IncrCounter("schedule.runs")
		}
	}
}
