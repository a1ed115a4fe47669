package commands

import (
	"context"
)

// StopClockCommandHandler pauses the engine clock. Stopping twice is not an error.
type StopClockCommandHandler struct {
	clock ClockController
}

func NewStopClockCommandHandler(clock ClockController) StopClockCommandHandler {
	return StopClockCommandHandler{clock: clock}
}

func (h *StopClockCommandHandler) Handle(_ context.Context, cmd StopClockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.clock.Stop()
	return nil
}
