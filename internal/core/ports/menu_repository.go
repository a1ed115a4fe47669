// Package ports defines the contracts between the barista core and its infrastructure:
// where the menu comes from and what drives the engine's ticks.
package ports

import (
	"context"

	"barista/internal/core/domain/model/menu"
)

// MenuRepository is the source of the static menu catalog.
type MenuRepository interface {
	// GetAll returns every item on the menu in catalog order.
	GetAll(ctx context.Context) ([]*menu.Item, error)

	// Get returns the item with the given id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id string) (*menu.Item, error)
}
