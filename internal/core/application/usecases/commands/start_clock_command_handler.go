package commands

import (
	"context"
)

// StartClockCommandHandler starts the engine clock.
type StartClockCommandHandler struct {
	clock ClockController
}

// NewStartClockCommandHandler creates a handler bound to the engine's clock control.
func NewStartClockCommandHandler(clock ClockController) StartClockCommandHandler {
	return StartClockCommandHandler{clock: clock}
}

// Handle starts ticking at the command's interval, replacing a running schedule.
func (h *StartClockCommandHandler) Handle(_ context.Context, cmd StartClockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.clock.Start(cmd.Interval())
}
