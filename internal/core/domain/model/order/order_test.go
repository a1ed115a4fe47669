package order_test

import (
	"testing"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/menu"
	"barista/internal/core/domain/model/order"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T) *menu.Item {
	t.Helper()
	item, err := menu.NewItem("c1", "café au lait", 4)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	t.Run("should create a queued order copying the menu item", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, newItem(t), now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "c1", o.MenuItemID())
		assert.Equal(t, "café au lait", o.Name())
		assert.Equal(t, 4, o.DurationSeconds())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, order.Queued, o.Status())
	})

	t.Run("should give each placement of the same item its own id", func(t *testing.T) {
		item := newItem(t)

		o1, err := order.NewOrder(kernel.NewUUID(), item, now)
		require.NoError(t, err)
		o2, err := order.NewOrder(kernel.NewUUID(), item, now)
		require.NoError(t, err)

		assert.False(t, o1.IsEqual(o2))
		assert.NotEqual(t, o1.MenuItemID(), o1.ID().String())
	})

	t.Run("should report all invalid inputs", func(t *testing.T) {
		var id kernel.UUID

		o, err := order.NewOrder(id, nil, time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should follow Queued -> Preparing -> Ready", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), newItem(t), time.Now())
		require.NoError(t, err)

		require.NoError(t, o.StartPreparing())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should not become ready without preparing", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newItem(t), time.Now())

		err := o.MarkReady()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Queued is not a valid status to complete")
		assert.Equal(t, order.Queued, o.Status())
	})

	t.Run("should not prepare twice", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newItem(t), time.Now())
		require.NoError(t, o.StartPreparing())

		err := o.StartPreparing()

		require.Error(t, err)
		assert.Equal(t, order.Preparing, o.Status())
	})
}

func TestOrder_Clone(t *testing.T) {
	t.Run("should be independent from the original", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), newItem(t), time.Now())

		cp := o.Clone()
		require.NoError(t, o.StartPreparing())

		assert.True(t, cp.IsEqual(o))
		assert.Equal(t, order.Queued, cp.Status())
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should clone nil as nil", func(t *testing.T) {
		var o *order.Order

		assert.Nil(t, o.Clone())
	})
}
