package queries

import (
	"errors"

	"barista/internal/pkg/guard"
)

var (
	ErrGetQueueQueryIsNotConstructed = errors.New(
		"GetQueueQuery must be created via NewGetQueueQuery constructor",
	)
)

// GetQueueQuery reads what the queue screen shows: the waiting orders, the order being
// prepared and its progress.
type GetQueueQuery struct {
	guard guard.ConstructorGuard
}

func NewGetQueueQuery() GetQueueQuery {
	return GetQueueQuery{guard: guard.NewConstructorGuard()}
}

func (q GetQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetQueueQueryIsNotConstructed)
}

// GetQueueQueryResponse is read from a single engine snapshot, so Preparing and Progress
// always belong together.
type GetQueueQueryResponse struct {
	Queued    []OrderView
	Preparing *OrderView
	Progress  float64
}
