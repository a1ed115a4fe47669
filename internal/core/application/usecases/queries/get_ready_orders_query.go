package queries

import (
	"context"
	"errors"

	"barista/internal/pkg/guard"
)

var (
	ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
		"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
	)
)

// GetReadyOrdersQuery reads the pickup pool in completion order.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

type GetReadyOrdersQueryHandler struct {
	board OrderBoard
}

func NewGetReadyOrdersQueryHandler(board OrderBoard) GetReadyOrdersQueryHandler {
	return GetReadyOrdersQueryHandler{board: board}
}

func (h GetReadyOrdersQueryHandler) Handle(_ context.Context, query GetReadyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return newOrderViews(h.board.Snapshot().Ready), nil
}
