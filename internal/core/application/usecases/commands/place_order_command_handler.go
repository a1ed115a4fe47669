package commands

import (
	"context"

	"barista/internal/core/domain/model/order"
	"barista/internal/core/ports"
)

// PlaceOrderCommandHandler looks the item up in the menu and hands it to the engine.
// An unknown menu item yields the repository's errs.ObjectNotFoundError.
type PlaceOrderCommandHandler struct {
	menuRepo ports.MenuRepository
	placer   OrderPlacer
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(menuRepo ports.MenuRepository, placer OrderPlacer) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		menuRepo: menuRepo,
		placer:   placer,
	}
}

// Handle places the order and returns it as the engine recorded it.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := h.menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	return h.placer.PlaceOrder(item)
}
