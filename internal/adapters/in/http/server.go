package http

import (
	"errors"
	"net/http"
	"time"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/application/usecases/queries"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/generated/servers"
	"barista/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ClockStatus reports the engine clock state for clock responses.
type ClockStatus interface {
	IsRunning() bool
	Interval() time.Duration
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	pickUpOrderHandler commands.PickUpOrderCommandHandler
	startClockHandler  commands.StartClockCommandHandler
	stopClockHandler   commands.StopClockCommandHandler

	// Query handlers
	getMenuHandler        queries.GetMenuQueryHandler
	getQueueHandler       queries.GetQueueQueryHandler
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler
	getCountsHandler      queries.GetCountsQueryHandler

	clock ClockStatus
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	startClockHandler commands.StartClockCommandHandler,
	stopClockHandler commands.StopClockCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getQueueHandler queries.GetQueueQueryHandler,
	getReadyOrdersHandler queries.GetReadyOrdersQueryHandler,
	getCountsHandler queries.GetCountsQueryHandler,
	clock ClockStatus,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		pickUpOrderHandler:    pickUpOrderHandler,
		startClockHandler:     startClockHandler,
		stopClockHandler:      stopClockHandler,
		getMenuHandler:        getMenuHandler,
		getQueueHandler:       getQueueHandler,
		getReadyOrdersHandler: getReadyOrdersHandler,
		getCountsHandler:      getCountsHandler,
		clock:                 clock,
	}
}

// GetMenu handles GET /api/v1/menu - lists the catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve menu")
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Id:              item.ID,
			Name:            item.Name,
			DurationSeconds: item.DurationSeconds,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order for a menu item.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(body.MenuItemId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		Id:              placed.ID().Bytes(),
		MenuItemId:      placed.MenuItemID(),
		Name:            placed.Name(),
		DurationSeconds: placed.DurationSeconds(),
		CreatedAt:       placed.CreatedAt(),
		Status:          servers.OrderStatus(placed.Status().String()),
	})
}

// GetQueue handles GET /api/v1/orders/queue - queued orders, the preparing order and progress.
func (s *Server) GetQueue(ctx echo.Context) error {
	queue, err := s.getQueueHandler.Handle(ctx.Request().Context(), queries.NewGetQueueQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve queue")
	}

	response := servers.Queue{
		Queued:   toOrders(queue.Queued),
		Progress: float32(queue.Progress),
	}
	if queue.Preparing != nil {
		preparing := toOrder(*queue.Preparing)
		response.Preparing = &preparing
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyOrders handles GET /api/v1/orders/ready - the pickup pool.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	ready, err := s.getReadyOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetReadyOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve ready orders")
	}

	return ctx.JSON(http.StatusOK, toOrders(ready))
}

// PickUpOrder handles DELETE /api/v1/orders/ready/{orderId}.
// A missing order is a 404 with removed=false, not an error body.
func (s *Server) PickUpOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(orderId)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewPickUpOrderCommand(id)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	removed, err := s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to pick up order")
	}

	status := http.StatusOK
	if !removed {
		status = http.StatusNotFound
	}
	return ctx.JSON(status, servers.PickUpResult{Removed: removed})
}

// GetCounts handles GET /api/v1/counts - badge numbers.
func (s *Server) GetCounts(ctx echo.Context) error {
	counts, err := s.getCountsHandler.Handle(ctx.Request().Context(), queries.NewGetCountsQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve counts")
	}

	return ctx.JSON(http.StatusOK, servers.Counts{
		Pending: counts.Pending,
		Pickup:  counts.Pickup,
	})
}

// StartClock handles POST /api/v1/clock/start.
func (s *Server) StartClock(ctx echo.Context) error {
	var body servers.StartClockJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewStartClockCommand(time.Duration(body.IntervalMs) * time.Millisecond)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid clock settings: "+err.Error())
	}

	if err = s.startClockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to start clock")
	}

	return ctx.JSON(http.StatusOK, s.clockState())
}

// StopClock handles POST /api/v1/clock/stop.
func (s *Server) StopClock(ctx echo.Context) error {
	if err := s.stopClockHandler.Handle(ctx.Request().Context(), commands.NewStopClockCommand()); err != nil {
		return errorResponse(ctx, err, "Failed to stop clock")
	}

	return ctx.JSON(http.StatusOK, s.clockState())
}

func (s *Server) clockState() servers.ClockState {
	return servers.ClockState{
		Running:    s.clock.IsRunning(),
		IntervalMs: int(s.clock.Interval().Milliseconds()),
	}
}

func toOrder(view queries.OrderView) servers.Order {
	return servers.Order{
		Id:              view.ID.Bytes(),
		MenuItemId:      view.MenuItemID,
		Name:            view.Name,
		DurationSeconds: view.DurationSeconds,
		CreatedAt:       view.CreatedAt,
		Status:          servers.OrderStatus(view.Status),
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return response
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// errorResponse maps domain errors to status codes. Unknown errors keep the generic
// message so internals do not leak.
func errorResponse(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, fallback)
	}
}
