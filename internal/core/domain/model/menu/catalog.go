package menu

import (
	"errors"
	"fmt"

	"barista/internal/pkg/errs"
)

// Catalog is the validated menu. Items keep the order they were declared in.
type Catalog struct {
	items []*Item
	byID  map[string]*Item
}

// NewCatalog builds a catalog from items. It fails when the list is empty,
// contains an unconstructed item, or repeats an id.
func NewCatalog(items []*Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("menu items")
	}

	c := &Catalog{
		items: make([]*Item, 0, len(items)),
		byID:  make(map[string]*Item, len(items)),
	}

	var problems []error
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("item %d: %w", idx, err))
			continue
		}
		if _, dup := c.byID[item.ID()]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"menu item id",
				fmt.Errorf("%q is declared more than once", item.ID()),
			))
			continue
		}
		c.byID[item.ID()] = item
		c.items = append(c.items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	return c, nil
}

// Get returns the item with the given id or an ObjectNotFoundError.
func (c *Catalog) Get(id string) (*Item, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menuItemId", id)
	}
	return item, nil
}

// Items returns the catalog entries in declaration order.
func (c *Catalog) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}
