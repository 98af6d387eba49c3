// Package scheduler triggers a daily job from a polling loop. The job runs
// once at start and again whenever the calendar date changes.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/forfeit/internal/common/clock"
	"github.com/KirkDiggler/forfeit/internal/period"
)

// Job is the work invoked on every new calendar day
type Job func(ctx context.Context)

var (
	// ErrNilConfig is returned when no config is supplied
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilJob is returned when no job is supplied
	ErrNilJob = errors.New("job cannot be nil")

	// ErrNilClock is returned when no clock is supplied
	ErrNilClock = errors.New("clock cannot be nil")

	// ErrAlreadyRunning is returned by Start on a running runner
	ErrAlreadyRunning = errors.New("runner already running")
)

// Config holds configuration for a Runner
type Config struct {
	// Interval is how often the date is checked. Defaults to one minute.
	Interval time.Duration

	// Location decides where a calendar day starts. Defaults to UTC.
	Location *time.Location

	Clock  clock.Clock
	Job    Job
	Logger *slog.Logger
}

// Runner invokes its job at most once per calendar day
type Runner struct {
	interval time.Duration
	location *time.Location
	clock    clock.Clock
	job      Job
	logger   *slog.Logger

	// runMu serializes job invocations
	runMu   sync.Mutex
	lastRun time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	done    chan struct{}
}

// New creates a Runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Job == nil {
		return nil, ErrNilJob
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Minute
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		interval: interval,
		location: location,
		clock:    cfg.Clock,
		job:      cfg.Job,
		logger:   logger,
	}, nil
}

// Start runs the job once and then polls until ctx is done or Stop is called
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.done = make(chan struct{})

	go r.loop(ctx, r.stopCh, r.done)
	return nil
}

// Stop halts the polling loop and waits for an in-flight job to finish
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	close(r.stopCh)
	done := r.done
	r.running = false
	r.mu.Unlock()

	<-done
}

// RunNow invokes the job immediately regardless of the date
func (r *Runner) RunNow(ctx context.Context) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	r.run(ctx, period.Today(r.clock.Now(), r.location))
}

func (r *Runner) loop(ctx context.Context, stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick runs the job when the date differs from the last run and reports whether it did
func (r *Runner) tick(ctx context.Context) bool {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	today := period.Today(r.clock.Now(), r.location)
	if !r.lastRun.IsZero() && !today.After(r.lastRun) {
		return false
	}

	r.run(ctx, today)
	return true
}

func (r *Runner) run(ctx context.Context, today time.Time) {
	r.logger.InfoContext(ctx, "running scheduled job", "date", today.Format(period.DateLayout))
	r.job(ctx)
	r.lastRun = today
}
