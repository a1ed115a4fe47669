// Package queries contains read operations over the engine and the menu.
// Implements the Query pattern for the read side of the CQRS architecture.
// Queries never change state and return plain read models.
package queries

import (
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/model/station"
)

// OrderBoard is the read side of the engine controller.
type OrderBoard interface {
	Snapshot() station.Snapshot
	Counts() station.Counts
}

// OrderView is the read model of an order.
type OrderView struct {
	ID              kernel.UUID
	MenuItemID      string
	Name            string
	DurationSeconds int
	CreatedAt       time.Time
	Status          string
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		MenuItemID:      o.MenuItemID(),
		Name:            o.Name(),
		DurationSeconds: o.DurationSeconds(),
		CreatedAt:       o.CreatedAt(),
		Status:          o.Status().String(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}
