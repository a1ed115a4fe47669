package jobs_test

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"barista/internal/jobs"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClock() *jobs.Clock {
	return jobs.NewClock(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClock_Start(t *testing.T) {
	t.Run("should tick repeatedly at a sub-second interval", func(t *testing.T) {
		clock := newClock()
		defer clock.Stop()
		var ticks atomic.Int32

		err := clock.Start(20*time.Millisecond, func() { ticks.Add(1) })

		require.NoError(t, err)
		assert.True(t, clock.IsRunning())
		assert.Equal(t, 20*time.Millisecond, clock.Interval())
		assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("should reject intervals outside the supported range", func(t *testing.T) {
		clock := newClock()

		for _, interval := range []time.Duration{0, time.Millisecond, 2 * time.Minute} {
			err := clock.Start(interval, func() {})

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, interval.String())
		}
		assert.False(t, clock.IsRunning())
	})

	t.Run("should require a callback", func(t *testing.T) {
		clock := newClock()

		err := clock.Start(time.Second, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should replace the previous subscription", func(t *testing.T) {
		clock := newClock()
		defer clock.Stop()
		var first, second atomic.Int32

		require.NoError(t, clock.Start(10*time.Millisecond, func() { first.Add(1) }))
		require.Eventually(t, func() bool { return first.Load() > 0 }, 2*time.Second, 5*time.Millisecond)

		require.NoError(t, clock.Start(10*time.Millisecond, func() { second.Add(1) }))
		frozen := first.Load()
		require.Eventually(t, func() bool { return second.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)

		assert.Equal(t, frozen, first.Load())
	})

	t.Run("should never run a tick while the previous one is running", func(t *testing.T) {
		clock := newClock()
		var inFlight, maxInFlight, ticks atomic.Int32

		require.NoError(t, clock.Start(10*time.Millisecond, func() {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(35 * time.Millisecond)
			inFlight.Add(-1)
			ticks.Add(1)
		}))
		require.Eventually(t, func() bool { return ticks.Load() >= 3 }, 3*time.Second, 10*time.Millisecond)
		clock.Stop()

		assert.Equal(t, int32(1), maxInFlight.Load())
		assert.Zero(t, inFlight.Load())
	})
}

func TestClock_Stop(t *testing.T) {
	t.Run("should not tick after stop returns", func(t *testing.T) {
		clock := newClock()
		var ticks atomic.Int32
		require.NoError(t, clock.Start(10*time.Millisecond, func() { ticks.Add(1) }))
		require.Eventually(t, func() bool { return ticks.Load() > 0 }, 2*time.Second, 5*time.Millisecond)

		clock.Stop()
		stopped := ticks.Load()
		time.Sleep(60 * time.Millisecond)

		assert.Equal(t, stopped, ticks.Load())
		assert.False(t, clock.IsRunning())
		assert.Zero(t, clock.Interval())
	})

	t.Run("should be a no-op when not running", func(t *testing.T) {
		clock := newClock()

		assert.NotPanics(t, func() {
			clock.Stop()
			clock.Stop()
		})
		assert.False(t, clock.IsRunning())
	})

	t.Run("should allow a restart after stop", func(t *testing.T) {
		clock := newClock()
		defer clock.Stop()
		var ticks atomic.Int32
		require.NoError(t, clock.Start(10*time.Millisecond, func() { ticks.Add(1) }))
		clock.Stop()
		before := ticks.Load()

		require.NoError(t, clock.Start(10*time.Millisecond, func() { ticks.Add(1) }))

		assert.Eventually(t, func() bool { return ticks.Load() > before }, 2*time.Second, 5*time.Millisecond)
	})
}

func TestClock_Panics(t *testing.T) {
	t.Run("should survive a panicking tick by default", func(t *testing.T) {
		clock := newClock()
		defer clock.Stop()
		var ticks atomic.Int32

		require.NoError(t, clock.Start(10*time.Millisecond, func() {
			ticks.Add(1)
			panic("tick failed")
		}))

		assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
		assert.True(t, clock.IsRunning())
	})

	t.Run("should crash the process when recovery is off", func(t *testing.T) {
		cmd := exec.Command(os.Args[0], "-test.run=^TestClock_CrashWithoutRecover$")
		cmd.Env = append(os.Environ(), "BARISTA_CLOCK_CRASH=1")

		err := cmd.Run()

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.NotZero(t, exitErr.ExitCode())
	})
}

// TestClock_CrashWithoutRecover only does work in the child process started above.
func TestClock_CrashWithoutRecover(t *testing.T) {
	if os.Getenv("BARISTA_CLOCK_CRASH") != "1" {
		t.Skip("run as a child process")
	}

	clock := jobs.NewClock(slog.New(slog.NewTextHandler(io.Discard, nil)), jobs.WithRecover(false))
	require.NoError(t, clock.Start(10*time.Millisecond, func() { panic("tick failed") }))

	time.Sleep(2 * time.Second)
}
