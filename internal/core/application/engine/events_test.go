package engine_test

import (
	"testing"

	"barista/internal/core/application/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker(t *testing.T) {
	t.Run("should deliver events to every subscriber", func(t *testing.T) {
		b := engine.NewBroker()
		first, unsubFirst := b.Subscribe()
		defer unsubFirst()
		second, unsubSecond := b.Subscribe()
		defer unsubSecond()

		b.Publish(engine.Event{Type: engine.EventOrderPlaced, OrderID: "1"})

		assert.Equal(t, "1", (<-first).OrderID)
		assert.Equal(t, "1", (<-second).OrderID)
	})

	t.Run("should drop events for a subscriber that does not read", func(t *testing.T) {
		b := engine.NewBroker()
		ch, unsubscribe := b.Subscribe()
		defer unsubscribe()

		for range 200 {
			b.Publish(engine.Event{Type: engine.EventProgress})
		}

		assert.Len(t, ch, cap(ch))
	})

	t.Run("should close the channel on unsubscribe", func(t *testing.T) {
		b := engine.NewBroker()
		ch, unsubscribe := b.Subscribe()

		unsubscribe()
		unsubscribe()
		b.Publish(engine.Event{Type: engine.EventOrderReady})

		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("should hand out closed channels after close", func(t *testing.T) {
		b := engine.NewBroker()
		early, _ := b.Subscribe()

		b.Close()
		late, unsubscribe := b.Subscribe()
		unsubscribe()

		_, open := <-early
		require.False(t, open)
		_, open = <-late
		assert.False(t, open)
	})
}
