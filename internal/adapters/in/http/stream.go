package http

import (
	"log/slog"
	"net/http"
	"time"

	"barista/internal/core/application/engine"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = (streamPongWait * 9) / 10
)

// EventSource is the engine's event feed.
type EventSource interface {
	Subscribe() (<-chan engine.Event, func())
}

// StreamEvent is the JSON frame sent for every engine event.
type StreamEvent struct {
	Type     string    `json:"type"`
	OrderID  string    `json:"orderId"`
	Name     string    `json:"name"`
	Progress float64   `json:"progress"`
	At       time.Time `json:"at"`
}

// StreamHandler pushes engine events over a WebSocket so screens can re-render and show
// toasts without polling.
type StreamHandler struct {
	source   EventSource
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewStreamHandler(source EventSource, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		logger: logger.With("component", "event_stream"),
	}
}

// Handle handles GET /api/v1/stream.
func (h *StreamHandler) Handle(ctx echo.Context) error {
	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.WarnContext(ctx.Request().Context(), "WebSocket upgrade failed", "error", err)
		return nil
	}
	defer conn.Close()

	events, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return nil
		case e, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return nil
			}
			if err := conn.WriteJSON(toStreamEvent(e)); err != nil {
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// readPump discards client frames and closes done when the peer goes away.
func (h *StreamHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("WebSocket closed", "error", err)
			}
			return
		}
	}
}

func toStreamEvent(e engine.Event) StreamEvent {
	return StreamEvent{
		Type:     string(e.Type),
		OrderID:  e.OrderID,
		Name:     e.Name,
		Progress: e.Progress,
		At:       e.At,
	}
}
