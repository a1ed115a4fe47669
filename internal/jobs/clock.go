package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"barista/internal/core/ports"
	"barista/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Clock drives a single callback at a fixed interval on a cron scheduler.
type Clock struct {
	mu       sync.Mutex
	cron     *cron.Cron
	interval time.Duration
	recover  bool
	logger   *slog.Logger
}

type ClockOption func(*Clock)

// WithRecover controls whether a panicking tick is logged and survived (the default) or
// left to crash the process.
func WithRecover(enabled bool) ClockOption {
	return func(c *Clock) { c.recover = enabled }
}

// NewClock creates a stopped clock.
func NewClock(logger *slog.Logger, opts ...ClockOption) *Clock {
	c := &Clock{
		recover: true,
		logger:  logger.With("component", "clock"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start schedules onTick every interval, replacing any previous schedule.
func (c *Clock) Start(interval time.Duration, onTick func()) error {
	if interval < ports.MinTickInterval || interval > ports.MaxTickInterval {
		return errs.NewValueIsOutOfRangeError("interval", interval, ports.MinTickInterval, ports.MaxTickInterval)
	}
	if onTick == nil {
		return errs.NewValueIsRequiredError("onTick")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopLocked()

	cronLogger := slogCronLogger{logger: c.logger}
	wrappers := []cron.JobWrapper{cron.SkipIfStillRunning(cronLogger)}
	if c.recover {
		wrappers = append([]cron.JobWrapper{cron.Recover(cronLogger)}, wrappers...)
	}
	scheduler := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(wrappers...),
	)
	scheduler.Schedule(every(interval), cron.FuncJob(onTick))
	scheduler.Start()

	c.cron = scheduler
	c.interval = interval
	c.logger.InfoContext(context.Background(), "Clock started", "interval", interval)
	return nil
}

// Stop halts the schedule and waits for an in-flight tick to return.
// Calling Stop on a stopped clock is a no-op.
func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopLocked() {
		c.logger.InfoContext(context.Background(), "Clock stopped")
	}
}

// IsRunning reports whether a schedule is active.
func (c *Clock) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cron != nil
}

// Interval returns the interval of the active schedule, or 0 when stopped.
func (c *Clock) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

func (c *Clock) stopLocked() bool {
	if c.cron == nil {
		return false
	}

	<-c.cron.Stop().Done()
	c.cron = nil
	c.interval = 0
	return true
}

// every is a cron.Schedule with sub-second resolution. cron.Every rounds to whole seconds.
type every time.Duration

func (e every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

// slogCronLogger routes cron's internal logging into slog. Cron reports every skipped
// tick at info level, which is debug noise for a 100ms clock.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
