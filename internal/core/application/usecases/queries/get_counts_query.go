package queries

import (
	"context"
	"errors"

	"barista/internal/pkg/guard"
)

var (
	ErrGetCountsQueryIsNotConstructed = errors.New(
		"GetCountsQuery must be created via NewGetCountsQuery constructor",
	)
)

// GetCountsQuery reads the badge numbers of the queue and pickup tabs.
type GetCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCountsQuery() GetCountsQuery {
	return GetCountsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetCountsQueryIsNotConstructed)
}

// GetCountsQueryResponse holds the badges.
//   - Pending counts queued orders plus the one being prepared
//   - Pickup counts ready orders
type GetCountsQueryResponse struct {
	Pending int
	Pickup  int
}

type GetCountsQueryHandler struct {
	board OrderBoard
}

func NewGetCountsQueryHandler(board OrderBoard) GetCountsQueryHandler {
	return GetCountsQueryHandler{board: board}
}

func (h GetCountsQueryHandler) Handle(_ context.Context, query GetCountsQuery) (GetCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCountsQueryResponse{}, err
	}

	counts := h.board.Counts()
	return GetCountsQueryResponse{
		Pending: counts.Pending,
		Pickup:  counts.Pickup,
	}, nil
}
