package station

import (
	"errors"
	"fmt"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/pkg/errs"
)

var (
	// ErrOrderIsNotQueued is returned by Enqueue for an order that is past the Queued status.
	ErrOrderIsNotQueued = errors.New("only Queued orders can be enqueued")

	// ErrOrderAlreadyOnStation is returned by Enqueue for an id the station already holds.
	ErrOrderAlreadyOnStation = errors.New("order is already on the station")

	// ErrInvariantViolated wraps every failure reported by CheckInvariants.
	ErrInvariantViolated = errors.New("station invariant violated")
)

// Station is the order store. See the package documentation for its rules.
type Station struct {
	queued    []*order.Order
	preparing *order.Order
	elapsed   time.Duration
	progress  float64
	ready     []*order.Order
}

// Counts holds the badge numbers shown next to the queue and pickup views.
type Counts struct {
	// Pending is len(queued) plus one when an order is preparing.
	Pending int
	// Pickup is len(ready).
	Pickup int
}

// Snapshot is a deep, read-only copy of the station state.
type Snapshot struct {
	Queued    []*order.Order
	Preparing *order.Order
	Elapsed   time.Duration
	Progress  float64
	Ready     []*order.Order
}

// NewStation returns an idle station with empty queue and pickup pool.
func NewStation() *Station {
	return &Station{
		queued: make([]*order.Order, 0),
		ready:  make([]*order.Order, 0),
	}
}

// Enqueue appends a Queued order to the tail of the queue.
func (s *Station) Enqueue(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Queued {
		return fmt.Errorf("%w: order %s is %s", ErrOrderIsNotQueued, o.ID(), o.Status())
	}
	if s.holds(o.ID()) {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyOnStation, o.ID())
	}

	s.queued = append(s.queued, o)
	return nil
}

// PromoteNext moves the head of the queue into the preparing slot and resets progress.
// It is a no-op returning false when the slot is occupied or the queue is empty.
func (s *Station) PromoteNext() (*order.Order, bool) {
	if s.preparing != nil || len(s.queued) == 0 {
		return nil, false
	}

	head := s.queued[0]
	if err := head.StartPreparing(); err != nil {
		panic(fmt.Errorf("%w: queued order %s cannot start preparing: %w", ErrInvariantViolated, head.ID(), err))
	}

	s.queued[0] = nil
	s.queued = s.queued[1:]
	s.preparing = head
	s.elapsed = 0
	s.progress = 0

	return head, true
}

// CompleteCurrent moves the preparing order to the tail of the pickup pool, frees the
// slot and resets progress. It is a no-op returning false when nothing is preparing.
// Callers follow a successful completion with PromoteNext.
func (s *Station) CompleteCurrent() (*order.Order, bool) {
	if s.preparing == nil {
		return nil, false
	}

	done := s.preparing
	if err := done.MarkReady(); err != nil {
		panic(fmt.Errorf("%w: preparing order %s cannot complete: %w", ErrInvariantViolated, done.ID(), err))
	}

	s.ready = append(s.ready, done)
	s.preparing = nil
	s.elapsed = 0
	s.progress = 0

	return done, true
}

// Advance records elapsed preparation time and the matching progress fraction for the
// preparing order. It returns false, changing nothing, when the station is idle.
func (s *Station) Advance(elapsed time.Duration, progress float64) bool {
	if s.preparing == nil {
		return false
	}

	s.elapsed = elapsed
	s.progress = progress
	return true
}

// PickUp removes the order with the given id from the pickup pool. An id that is not
// in the pool (already picked up, or still queued or preparing) yields an
// ObjectNotFoundError and leaves the station unchanged.
func (s *Station) PickUp(id kernel.UUID) (*order.Order, error) {
	for i, o := range s.ready {
		if !o.ID().IsEqual(id) {
			continue
		}

		s.ready = append(s.ready[:i], s.ready[i+1:]...)
		return o, nil
	}

	return nil, errs.NewObjectNotFoundError("orderId", id.String())
}

// Queued returns copies of the waiting orders, head first.
func (s *Station) Queued() []*order.Order {
	return cloneAll(s.queued)
}

// Preparing returns a copy of the order in the slot, or nil when idle.
func (s *Station) Preparing() *order.Order {
	return s.preparing.Clone()
}

// IsIdle reports whether the preparing slot is empty.
func (s *Station) IsIdle() bool {
	return s.preparing == nil
}

// Elapsed returns the preparation time accumulated by the current order.
func (s *Station) Elapsed() time.Duration {
	return s.elapsed
}

// Progress returns the completion fraction of the current order; 0 when idle.
func (s *Station) Progress() float64 {
	return s.progress
}

// Ready returns copies of the orders in the pickup pool, in completion order.
func (s *Station) Ready() []*order.Order {
	return cloneAll(s.ready)
}

// Counts returns the badge numbers.
func (s *Station) Counts() Counts {
	pending := len(s.queued)
	if s.preparing != nil {
		pending++
	}

	return Counts{
		Pending: pending,
		Pickup:  len(s.ready),
	}
}

// Snapshot returns a deep copy of the whole state.
func (s *Station) Snapshot() Snapshot {
	return Snapshot{
		Queued:    s.Queued(),
		Preparing: s.Preparing(),
		Elapsed:   s.elapsed,
		Progress:  s.progress,
		Ready:     s.Ready(),
	}
}

// CheckInvariants verifies the structural rules of the station. A non-nil result is a
// programming error, never a user error.
func (s *Station) CheckInvariants() error {
	var problems []error
	seen := make(map[kernel.UUID]string)

	track := func(o *order.Order, where string, want order.Status) {
		if prev, dup := seen[o.ID()]; dup {
			problems = append(problems, fmt.Errorf("order %s is both %s and %s", o.ID(), prev, where))
		}
		seen[o.ID()] = where
		if o.Status() != want {
			problems = append(problems, fmt.Errorf("order %s is %s but sits in %s", o.ID(), o.Status(), where))
		}
	}

	for _, o := range s.queued {
		track(o, "queued", order.Queued)
	}
	if s.preparing != nil {
		track(s.preparing, "preparing", order.Preparing)
	}
	for _, o := range s.ready {
		track(o, "ready", order.Ready)
	}

	if s.progress < 0 || s.progress > 1 {
		problems = append(problems, fmt.Errorf("progress %v is outside [0, 1]", s.progress))
	}
	if s.preparing == nil && (s.progress != 0 || s.elapsed != 0) {
		problems = append(problems, fmt.Errorf("idle station reports progress %v after %s", s.progress, s.elapsed))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvariantViolated, errors.Join(problems...))
}

func (s *Station) holds(id kernel.UUID) bool {
	if s.preparing != nil && s.preparing.ID().IsEqual(id) {
		return true
	}
	for _, o := range s.queued {
		if o.ID().IsEqual(id) {
			return true
		}
	}
	for _, o := range s.ready {
		if o.ID().IsEqual(id) {
			return true
		}
	}
	return false
}

func cloneAll(orders []*order.Order) []*order.Order {
	out := make([]*order.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}
