package commands_test

import (
	"testing"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand("  c1 ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "c1", cmd.MenuItemID())
}

func TestNewPlaceOrderCommand_EmptyMenuItemID(t *testing.T) {
	for _, id := range []string{"", "   "} {
		_, err := commands.NewPlaceOrderCommand(id)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "menuItemId")
	}
}

func TestPlaceOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
