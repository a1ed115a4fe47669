package commands_test

import (
	"testing"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPickUpOrderCommand(t *testing.T) {
	t.Run("should keep the order id", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewPickUpOrderCommand(id)

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
	})

	t.Run("should reject a zero id", func(t *testing.T) {
		_, err := commands.NewPickUpOrderCommand(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestPickUpOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should report the engine result", func(t *testing.T) {
		id := kernel.NewUUID()
		eng := new(MockEngine)
		eng.On("PickUp", id).Return(true).Once()
		eng.On("PickUp", id).Return(false).Once()

		handler := commands.NewPickUpOrderCommandHandler(eng)
		cmd, _ := commands.NewPickUpOrderCommand(id)

		first, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)
		second, err := handler.Handle(t.Context(), cmd)
		require.NoError(t, err)

		assert.True(t, first)
		assert.False(t, second)
		eng.AssertExpectations(t)
	})

	t.Run("should reject a zero-value command", func(t *testing.T) {
		eng := new(MockEngine)
		handler := commands.NewPickUpOrderCommandHandler(eng)

		removed, err := handler.Handle(t.Context(), commands.PickUpOrderCommand{})

		require.ErrorIs(t, err, commands.ErrPickUpOrderCommandIsNotConstructed)
		assert.False(t, removed)
		eng.AssertNotCalled(t, "PickUp", mock.Anything)
	})
}
