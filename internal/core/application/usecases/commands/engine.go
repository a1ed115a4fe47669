// Package commands contains the operations that change engine state.
// Implements the Command pattern for the write side of the CQRS architecture:
// each command is validated on construction and executed by its handler.
package commands

import (
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/core/domain/model/order"
)

// Engine interfaces give each handler only the part of the engine controller it drives.
type (
	// OrderPlacer accepts new orders.
	OrderPlacer interface {
		PlaceOrder(item *menu.Item) (*order.Order, error)
	}

	// OrderPicker removes ready orders from the pickup pool.
	OrderPicker interface {
		PickUp(id kernel.UUID) bool
	}

	// ClockController starts and pauses the engine clock.
	ClockController interface {
		Start(interval time.Duration) error
		Stop()
	}
)
