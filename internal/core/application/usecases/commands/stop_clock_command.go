package commands

import (
	"errors"

	"barista/internal/pkg/guard"
)

var (
	ErrStopClockCommandIsNotConstructed = errors.New(
		"StopClockCommand must be created via NewStopClockCommand constructor",
	)
)

// StopClockCommand pauses the engine clock. Orders keep their state and progress.
type StopClockCommand struct {
	guard guard.ConstructorGuard
}

// NewStopClockCommand creates a parameterless stop command.
func NewStopClockCommand() StopClockCommand {
	return StopClockCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c StopClockCommand) Validate() error {
	return c.guard.Validate(ErrStopClockCommandIsNotConstructed)
}
