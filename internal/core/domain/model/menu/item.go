package menu

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"barista/internal/pkg/errs"
	"barista/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a catalog entry. Its duration paces preparation on the station; it is
// advisory, not a deadline.
type Item struct {
	id              string
	name            string
	durationSeconds int

	guard guard.ConstructorGuard
}

// NewItem validates and creates a catalog item. All violations are reported
// together.
//
// Example:
//
//	item, err := menu.NewItem("c1", "café au lait", 4)
//	if err != nil {
//	    return fmt.Errorf("bad menu entry: %w", err)
//	}
func NewItem(id, name string, durationSeconds int) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setDurationSeconds(durationSeconds),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the catalog identifier.
func (i *Item) ID() string {
	return i.id
}

// Name returns the display name.
func (i *Item) Name() string {
	return i.name
}

// DurationSeconds returns the preparation time in whole seconds.
func (i *Item) DurationSeconds() int {
	return i.durationSeconds
}

// Duration returns the preparation time as a time.Duration.
func (i *Item) Duration() time.Duration {
	return time.Duration(i.durationSeconds) * time.Second
}

func (i *Item) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("menu item id")
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	i.name = name
	return nil
}

func (i *Item) setDurationSeconds(seconds int) error {
	if seconds <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"duration is invalid",
			fmt.Errorf("%d is not greater than 0", seconds),
		)
	}
	i.durationSeconds = seconds
	return nil
}
