// Package scheduler manages the maintenance worker's cron jobs.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

// BatchJob is a scheduled batch task. Execute processes one batch and returns
// the number of items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager owns a single cron instance running in the business
// timezone, so schedule expressions behave the way the front desk expects.
type SchedulerManager struct {
	cron   *cron.Cron
	logger logger.Interface

	started   bool
	startedMu sync.RWMutex
}

func NewSchedulerManager(log logger.Interface) *SchedulerManager {
	c := cron.New(
		cron.WithLocation(biztime.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &SchedulerManager{
		cron:   c,
		logger: log,
	}
}

// RegisterExpirySweepJob schedules the nightly pass that flips members whose
// expiry date has passed to the expired status.
func (m *SchedulerManager) RegisterExpirySweepJob(schedule string, job BatchJob) error {
	_, err := m.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		m.runSweep(ctx, job)
	})
	if err != nil {
		return err
	}

	m.logger.Infow("registered expiry sweep job", "schedule", schedule)
	return nil
}

func (m *SchedulerManager) runSweep(ctx context.Context, job BatchJob) {
	m.logger.Debugw("expiry sweep started")

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("expiry sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("expiry sweep completed",
			"expired", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("expiry sweep found nothing to do",
			"duration", time.Since(startTime),
		)
	}
}

// RegisterReminderJob schedules the daily reminder batch that emails members
// whose memberships expire within the configured lead window.
func (m *SchedulerManager) RegisterReminderJob(schedule string, job BatchJob) error {
	_, err := m.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		m.runReminders(ctx, job)
	})
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder job", "schedule", schedule)
	return nil
}

func (m *SchedulerManager) runReminders(ctx context.Context, job BatchJob) {
	m.logger.Debugw("reminder batch started")

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("reminder batch failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	m.logger.Infow("reminder batch completed",
		"sent", count,
		"duration", time.Since(startTime),
	)
}

func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.cron.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.cron.Entries()))
}

// Stop halts scheduling and waits for running jobs to finish.
func (m *SchedulerManager) Stop() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return
	}

	m.logger.Infow("stopping scheduler manager")

	ctx := m.cron.Stop()
	<-ctx.Done()
	m.started = false

	m.logger.Infow("scheduler manager stopped")
}

func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
