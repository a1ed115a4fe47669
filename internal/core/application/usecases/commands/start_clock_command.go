package commands

import (
	"errors"
	"time"

	"barista/internal/core/ports"
	"barista/internal/pkg/errs"
	"barista/internal/pkg/guard"
)

var (
	ErrStartClockCommandIsNotConstructed = errors.New(
		"StartClockCommand must be created via NewStartClockCommand constructor",
	)
)

// StartClockCommand starts (or re-paces) the engine clock. It is typically sent when the
// queue screen gains focus.
type StartClockCommand struct { //nolint:recvcheck //using for validation
	interval time.Duration

	guard guard.ConstructorGuard
}

// NewStartClockCommand creates a command for the given tick interval, which must lie in
// [ports.MinTickInterval, ports.MaxTickInterval].
func NewStartClockCommand(interval time.Duration) (StartClockCommand, error) {
	cmd := StartClockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInterval(interval); err != nil {
		return StartClockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartClockCommand) Validate() error {
	return c.guard.Validate(ErrStartClockCommandIsNotConstructed)
}

// Interval returns the tick interval.
func (c StartClockCommand) Interval() time.Duration {
	return c.interval
}

func (c *StartClockCommand) setInterval(interval time.Duration) error {
	if interval < ports.MinTickInterval || interval > ports.MaxTickInterval {
		return errs.NewValueIsOutOfRangeError("interval", interval, ports.MinTickInterval, ports.MaxTickInterval)
	}

	c.interval = interval
	return nil
}
