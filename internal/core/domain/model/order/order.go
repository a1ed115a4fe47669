package order

import (
	"errors"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is one placement of a menu item. The menu item's name and duration are copied
// at placement time, so later catalog changes never affect an order in flight.
//
// Order follows these invariants:
//   - Has a valid, unique identifier distinct from the menu item id
//   - Duration is positive
//   - Status only moves forward: Queued -> Preparing -> Ready
type Order struct {
	id              kernel.UUID
	menuItemID      string
	name            string
	durationSeconds int
	createdAt       time.Time
	status          Status

	isConstructed bool
}

// NewOrder creates a Queued order for item.
//
// Example:
//
//	item, _ := menu.NewItem("c1", "café au lait", 4)
//	o, err := order.NewOrder(kernel.NewUUID(), item, time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // Queued
func NewOrder(id kernel.UUID, item *menu.Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Queued,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItem(item),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MenuItemID returns the id of the catalog item that was ordered.
func (o *Order) MenuItemID() string {
	return o.menuItemID
}

// Name returns the ordered item's display name.
func (o *Order) Name() string {
	return o.name
}

// DurationSeconds returns the preparation time in seconds.
func (o *Order) DurationSeconds() int {
	return o.durationSeconds
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// StartPreparing moves the order from Queued to Preparing.
func (o *Order) StartPreparing() error {
	next, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// MarkReady moves the order from Preparing to Ready.
func (o *Order) MarkReady() error {
	next, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Clone returns an independent copy, used for read-only snapshots.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	return &cp
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItem(item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.menuItemID = item.ID()
	o.name = item.Name()
	o.durationSeconds = item.DurationSeconds()
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
