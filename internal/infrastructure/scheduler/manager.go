// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/tansyhq/tansy/internal/infrastructure/cache"
	"github.com/tansyhq/tansy/internal/shared/biztime"
	"github.com/tansyhq/tansy/internal/shared/config"
	"github.com/tansyhq/tansy/internal/shared/goroutine"
	"github.com/tansyhq/tansy/internal/shared/logger"
	"github.com/tansyhq/tansy/internal/shared/metrics"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Lock lease names shared by all replicas.
const (
	recurringPassLock = "recurring"
	expirySweepLock   = "expiry"
)

// SchedulerManager manages the notification jobs using a single gocron v2
// scheduler. Cron expressions evaluate in the business timezone. Each pass
// runs under a singleton mode so a slow pass is never overlapped by its own
// next tick, and under a distributed lease so replicas never double-send.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	lock      cache.PassLock
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(lock cache.PassLock, log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	if lock == nil {
		lock = cache.NewNoopPassLock()
	}

	return &SchedulerManager{
		scheduler: scheduler,
		lock:      lock,
		logger:    log,
	}, nil
}

// RegisterNotificationJobs registers the two notification passes:
//   - recurring pass: every minute on the minute, evaluates recurring rule
//     cadences against the current business time
//   - expiry sweep: daily at the configured sweep hour, plus an optional
//     immediate run at startup
func (m *SchedulerManager) RegisterNotificationJobs(
	recurringJob BatchJob,
	expiryJob BatchJob,
	cfg *config.NotifierConfig,
) error {
	passTimeout := time.Duration(cfg.PassTimeout) * time.Second
	lockTTL := time.Duration(cfg.LockTTL) * time.Second

	_, err := m.scheduler.NewJob(
		gocron.CronJob("* * * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
			defer cancel()
			m.runLockedPass(ctx, recurringPassLock, lockTTL, recurringJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "recurring"),
		gocron.WithName("recurring-pass"),
	)
	if err != nil {
		return err
	}

	sweepCron := fmt.Sprintf("0 %d * * *", cfg.SweepHour)
	sweepOpts := []gocron.JobOption{
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "expiry"),
		gocron.WithName("expiry-sweep"),
	}
	if cfg.SweepOnStart {
		sweepOpts = append(sweepOpts, gocron.WithStartAt(gocron.WithStartImmediately()))
	}

	_, err = m.scheduler.NewJob(
		gocron.CronJob(sweepCron, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
			defer cancel()
			m.runLockedPass(ctx, expirySweepLock, lockTTL, expiryJob)
		}),
		sweepOpts...,
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered notification jobs",
		"recurring_pass", "every minute",
		"expiry_sweep", fmt.Sprintf("%02d:00", cfg.SweepHour),
		"sweep_on_start", cfg.SweepOnStart,
	)
	return nil
}

func (m *SchedulerManager) runLockedPass(ctx context.Context, name string, ttl time.Duration, job BatchJob) {
	defer goroutine.Recover(m.logger, "notification-pass-"+name)

	acquired, err := m.lock.TryAcquire(ctx, name, ttl)
	if err != nil {
		m.logger.Errorw("failed to acquire pass lock", "pass", name, "error", err)
		return
	}
	if !acquired {
		m.logger.Debugw("pass lock held elsewhere, skipping", "pass", name)
		return
	}
	defer func() {
		if err := m.lock.Release(context.WithoutCancel(ctx), name); err != nil {
			m.logger.Warnw("failed to release pass lock", "pass", name, "error", err)
		}
	}()

	startTime := biztime.NowUTC()
	defer func() {
		metrics.RecordPassDuration(name, time.Since(startTime))
	}()

	sent, err := job.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if ctx.Err() != nil {
			return
		}
		m.logger.Errorw("notification pass failed",
			"pass", name,
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if sent > 0 {
		m.logger.Infow("notification pass completed",
			"pass", name,
			"sent", sent,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("notification pass completed with nothing to send",
			"pass", name,
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
