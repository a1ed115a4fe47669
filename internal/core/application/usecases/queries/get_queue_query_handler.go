package queries

import (
	"context"
)

// GetQueueQueryHandler reads the queue from the engine.
//
// Example:
//
//	handler := NewGetQueueQueryHandler(controller)
//	queue, err := handler.Handle(ctx, NewGetQueueQuery())
//	if err != nil {
//	    return err
//	}
//	if queue.Preparing != nil {
//	    fmt.Printf("%s: %.0f%%\n", queue.Preparing.Name, queue.Progress*100)
//	}
type GetQueueQueryHandler struct {
	board OrderBoard
}

func NewGetQueueQueryHandler(board OrderBoard) GetQueueQueryHandler {
	return GetQueueQueryHandler{board: board}
}

func (h GetQueueQueryHandler) Handle(_ context.Context, query GetQueueQuery) (GetQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQueueQueryResponse{}, err
	}

	snap := h.board.Snapshot()
	response := GetQueueQueryResponse{
		Queued:   newOrderViews(snap.Queued),
		Progress: snap.Progress,
	}
	if snap.Preparing != nil {
		view := newOrderView(snap.Preparing)
		response.Preparing = &view
	}

	return response, nil
}
