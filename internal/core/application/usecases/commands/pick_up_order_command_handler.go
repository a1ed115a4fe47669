package commands

import (
	"context"
)

// PickUpOrderCommandHandler removes ready orders.
//
// A pickup of an order that is not ready (already collected, or still in the queue) is
// not an error: Handle reports removed=false so the caller can refresh its view.
//
// Example:
//
//	cmd, _ := NewPickUpOrderCommand(orderID)
//	removed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !removed {
//	    // stale screen, order is gone
//	}
type PickUpOrderCommandHandler struct {
	picker OrderPicker
}

// NewPickUpOrderCommandHandler creates a handler for pickups.
func NewPickUpOrderCommandHandler(picker OrderPicker) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{picker: picker}
}

// Handle returns whether the order was removed. The error is non-nil only for an
// invalid command.
func (h *PickUpOrderCommandHandler) Handle(_ context.Context, cmd PickUpOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return h.picker.PickUp(cmd.OrderID()), nil
}
