package engine

import (
	"sync"
	"time"

	"barista/internal/core/domain/model/order"
)

// subscriberBufferSize is the channel buffer for each event subscriber.
// Events are dropped if a subscriber falls this far behind.
const subscriberBufferSize = 64

type EventType string

const (
	EventOrderPlaced        EventType = "order_placed"
	EventPreparationStarted EventType = "preparation_started"
	EventProgress           EventType = "progress"
	EventOrderReady         EventType = "order_ready"
	EventOrderPickedUp      EventType = "order_picked_up"
)

// Event describes one engine transition.
type Event struct {
	Type     EventType
	OrderID  string
	Name     string
	Progress float64
	At       time.Time
}

func newOrderEvent(t EventType, o *order.Order, progress float64, at time.Time) Event {
	return Event{
		Type:     t,
		OrderID:  o.ID().String(),
		Name:     o.Name(),
		Progress: progress,
		At:       at,
	}
}

// Broker fans engine events out to subscribers. It is safe for concurrent use.
type Broker struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewBroker creates a broker with no subscribers.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[int]chan Event),
	}
}

// Subscribe returns a channel of events and an unsubscribe function. After Close the
// returned channel is already closed.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBufferSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
}

// Publish delivers events to every subscriber, dropping them for subscribers whose
// buffers are full.
func (b *Broker) Publish(events ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for _, ch := range b.subs {
		for _, e := range events {
			select {
			case ch <- e:
			default:
			}
		}
	}
}

// Close closes every subscriber channel. Later Publish calls are ignored.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
}
