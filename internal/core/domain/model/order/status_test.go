package order_test

import (
	"testing"

	"barista/internal/core/domain/model/order"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Queued, "Queued"},
		{order.Preparing, "Preparing"},
		{order.Ready, "Ready"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept lifecycle statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Queued, order.Preparing, order.Ready} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(9)} {
			err := s.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not a valid status")
		}
	})
}

func TestStatus_Prepare(t *testing.T) {
	t.Run("should move Queued to Preparing", func(t *testing.T) {
		next, err := order.Queued.Prepare()

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("should refuse every other status", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Preparing, order.Ready} {
			next, err := s.Prepare()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), next)
			assert.Contains(t, err.Error(), s.String()+" is not a valid status to prepare")
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should move Preparing to Ready", func(t *testing.T) {
		next, err := order.Preparing.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)
	})

	t.Run("should refuse every other status", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Queued, order.Ready} {
			_, err := s.Complete()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), s.String()+" is not a valid status to complete")
		}
	})
}
