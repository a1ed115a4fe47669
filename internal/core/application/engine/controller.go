package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/model/station"
	"barista/internal/core/domain/services"
	"barista/internal/core/ports"
	"barista/internal/pkg/errs"
)

// Controller is the order-lifecycle engine. Build one per process with NewController and
// pass it to every consumer.
type Controller struct {
	// lifecycle serializes Start and Stop. It is never held by a tick.
	lifecycle sync.Mutex

	mu       sync.Mutex
	station  *station.Station
	interval time.Duration
	running  bool

	clock      ports.Clock
	broker     *Broker
	metrics    *Metrics
	now        func() time.Time
	assertions bool
	logger     *slog.Logger
}

type Option func(*Controller)

// WithBroker publishes engine events on b.
func WithBroker(b *Broker) Option {
	return func(c *Controller) { c.broker = b }
}

// WithMetrics records engine state on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithAssertions makes an invariant violation panic instead of only being logged. Ticks run
// on the clock's goroutine, so a tick-time violation only stops the process when the clock
// does not recover panics (see jobs.WithRecover).
func WithAssertions(enabled bool) Option {
	return func(c *Controller) { c.assertions = enabled }
}

// WithNow overrides the time source used for order and event timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// NewController creates a stopped engine with an empty station.
func NewController(clock ports.Clock, logger *slog.Logger, opts ...Option) *Controller {
	c := &Controller{
		station: station.NewStation(),
		clock:   clock,
		broker:  NewBroker(),
		now:     time.Now,
		logger:  logger.With("component", "engine"),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.metrics.observe(c.station)
	return c
}

// PlaceOrder creates a Queued order for item and appends it to the queue. When the
// station is idle the order is promoted before PlaceOrder returns.
func (c *Controller) PlaceOrder(item *menu.Item) (*order.Order, error) {
	o, err := order.NewOrder(kernel.NewUUID(), item, c.now())
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.station.Enqueue(o); err != nil {
		return nil, err
	}
	c.metrics.orderPlaced()

	at := c.now()
	events := []Event{newOrderEvent(EventOrderPlaced, o, 0, at)}
	if promoted, ok := c.station.PromoteNext(); ok {
		events = append(events, newOrderEvent(EventPreparationStarted, promoted, 0, at))
	}

	c.afterMutation(events)
	c.logger.Info("Order placed", "orderId", o.ID().String(), "menuItemId", o.MenuItemID())

	return o.Clone(), nil
}

// PickUp removes a Ready order. It reports false when the id is not in the pickup pool,
// which happens when the caller acts on stale data.
func (c *Controller) PickUp(id kernel.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, err := c.station.PickUp(id)
	removed := err == nil
	c.metrics.orderPickedUp(removed)
	if !removed {
		c.logger.Debug("Pickup of unknown order", "orderId", id.String(), "error", err)
		return false
	}

	c.afterMutation([]Event{newOrderEvent(EventOrderPickedUp, o, 0, c.now())})
	return true
}

// Start begins ticking every interval. Calling Start while running replaces the
// interval. The preparing order keeps its progress across Stop and Start.
func (c *Controller) Start(interval time.Duration) error {
	if interval <= 0 {
		return errs.NewValueIsInvalidError("interval")
	}

	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	prevInterval, prevRunning := c.interval, c.running
	c.interval, c.running = interval, true
	c.mu.Unlock()

	if err := c.clock.Start(interval, c.tick); err != nil {
		c.mu.Lock()
		c.interval, c.running = prevInterval, prevRunning
		c.mu.Unlock()
		return err
	}

	c.logger.InfoContext(context.Background(), "Engine started", "interval", interval)
	return nil
}

// Stop pauses the engine. State is kept as is. Stopping a stopped engine is a no-op.
func (c *Controller) Stop() {
	c.lifecycle.Lock()
	defer c.lifecycle.Unlock()

	c.mu.Lock()
	wasRunning := c.running
	c.running = false
	c.mu.Unlock()

	c.clock.Stop()
	if wasRunning {
		c.logger.InfoContext(context.Background(), "Engine stopped")
	}
}

// IsRunning reports whether ticks are being applied.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Interval returns the tick interval of the running engine, or of the last run.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.interval
}

// Queued returns the waiting orders, head first.
func (c *Controller) Queued() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Queued()
}

// Preparing returns the order in the preparing slot, or nil.
func (c *Controller) Preparing() *order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Preparing()
}

// Progress returns the completion fraction of the preparing order, 0 when idle.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Progress()
}

// Ready returns the pickup pool in completion order.
func (c *Controller) Ready() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Ready()
}

// Counts returns the pending and pickup badge numbers.
func (c *Controller) Counts() station.Counts {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Counts()
}

// Snapshot returns a consistent copy of the whole engine state.
func (c *Controller) Snapshot() station.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.station.Snapshot()
}

// Subscribe streams engine events until the returned function is called.
func (c *Controller) Subscribe() (<-chan Event, func()) {
	return c.broker.Subscribe()
}

// tick applies one clock interval. Completion and the following promotion happen
// under the same lock.
func (c *Controller) tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}

	at := c.now()
	if c.station.IsIdle() {
		promoted, ok := c.station.PromoteNext()
		if !ok {
			return
		}
		c.afterMutation([]Event{newOrderEvent(EventPreparationStarted, promoted, 0, at)})
		return
	}

	current := c.station.Preparing()
	elapsed := c.station.Elapsed() + c.interval
	progress := services.ComputeProgress(elapsed, current.DurationSeconds())
	c.station.Advance(elapsed, progress)

	events := []Event{newOrderEvent(EventProgress, current, progress, at)}
	if progress >= 1 {
		done, _ := c.station.CompleteCurrent()
		c.metrics.orderCompleted()
		events = append(events, newOrderEvent(EventOrderReady, done, 1, at))
		c.logger.Info("Order ready", "orderId", done.ID().String(), "name", done.Name())

		if next, ok := c.station.PromoteNext(); ok {
			events = append(events, newOrderEvent(EventPreparationStarted, next, 0, at))
		}
	}

	c.afterMutation(events)
}

// afterMutation must be called with mu held.
func (c *Controller) afterMutation(events []Event) {
	if err := c.station.CheckInvariants(); err != nil {
		if c.assertions {
			panic(err)
		}
		c.logger.Error("Engine invariant violated", "error", err)
	}

	c.metrics.observe(c.station)
	c.broker.Publish(events...)
}
