package commands

import (
	"errors"
	"strings"

	"barista/internal/pkg/errs"
	"barista/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a customer ordering one item from the menu.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("c1")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", o.ID(), o.Status())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	menuItemID string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to order the menu item with the given id.
// Surrounding whitespace is trimmed; an empty id is rejected.
func NewPlaceOrderCommand(menuItemID string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMenuItemID(menuItemID); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// MenuItemID returns the catalog id of the ordered item.
func (c PlaceOrderCommand) MenuItemID() string {
	return c.menuItemID
}

func (c *PlaceOrderCommand) setMenuItemID(menuItemID string) error {
	menuItemID = strings.TrimSpace(menuItemID)
	if menuItemID == "" {
		return errs.NewValueIsRequiredError("menuItemId")
	}

	c.menuItemID = menuItemID
	return nil
}
