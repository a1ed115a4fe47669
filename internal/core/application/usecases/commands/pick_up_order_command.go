package commands

import (
	"errors"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/pkg/guard"
)

var (
	ErrPickUpOrderCommandIsNotConstructed = errors.New(
		"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
	)
)

// PickUpOrderCommand represents a customer collecting a ready order.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command to remove orderID from the pickup pool.
func NewPickUpOrderCommand(orderID kernel.UUID) (PickUpOrderCommand, error) {
	cmd := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PickUpOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the order to pick up.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
