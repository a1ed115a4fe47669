package commands_test

import (
	"testing"
	"time"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/ports"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartClockCommand(t *testing.T) {
	t.Run("should accept the bounds", func(t *testing.T) {
		for _, interval := range []time.Duration{ports.MinTickInterval, 100 * time.Millisecond, ports.MaxTickInterval} {
			cmd, err := commands.NewStartClockCommand(interval)

			require.NoError(t, err)
			assert.Equal(t, interval, cmd.Interval())
		}
	})

	t.Run("should reject intervals out of range", func(t *testing.T) {
		for _, interval := range []time.Duration{0, -time.Second, time.Millisecond, 2 * time.Minute} {
			_, err := commands.NewStartClockCommand(interval)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, interval.String())
		}
	})
}

func TestStartClockCommandHandler_Handle(t *testing.T) {
	eng := new(MockEngine)
	eng.On("Start", 100*time.Millisecond).Return(nil).Once()
	handler := commands.NewStartClockCommandHandler(eng)
	cmd, _ := commands.NewStartClockCommand(100 * time.Millisecond)

	require.NoError(t, handler.Handle(t.Context(), cmd))
	require.ErrorIs(t,
		handler.Handle(t.Context(), commands.StartClockCommand{}),
		commands.ErrStartClockCommandIsNotConstructed,
	)
	eng.AssertExpectations(t)
}

func TestStopClockCommandHandler_Handle(t *testing.T) {
	eng := new(MockEngine)
	eng.On("Stop").Return().Twice()
	handler := commands.NewStopClockCommandHandler(eng)

	require.NoError(t, handler.Handle(t.Context(), commands.NewStopClockCommand()))
	require.NoError(t, handler.Handle(t.Context(), commands.NewStopClockCommand()))
	require.ErrorIs(t,
		handler.Handle(t.Context(), commands.StopClockCommand{}),
		commands.ErrStopClockCommandIsNotConstructed,
	)
	eng.AssertExpectations(t)
}
