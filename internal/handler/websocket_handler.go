// internal/handler/websocket_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"printer-service/internal/utils"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPongTimeout  = 60 * time.Second
	wsPingInterval = 54 * time.Second
)

// WebSocketHandler streams print job events to connected clients
type WebSocketHandler struct {
	upgrader websocket.Upgrader
	eventBus *EventBus
	logger   *utils.ServiceLogger
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(eventBus *EventBus, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// In production, implement proper origin checking
				return true
			},
		},
		eventBus: eventBus,
		logger:   utils.NewServiceLogger(logger, "websocket-handler"),
	}
}

// RegisterRoutes registers WebSocket routes
func (h *WebSocketHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/events", h.HandleEvents)
}

// HandleEvents upgrades the connection and streams job events until the
// client disconnects.
func (h *WebSocketHandler) HandleEvents(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	clientID := uuid.New().String()
	subscriber := h.eventBus.Subscribe()

	h.logger.Info("Event WebSocket client connected",
		zap.String("client_id", clientID),
		zap.String("remote_addr", c.Request.RemoteAddr),
	)

	go h.writePump(conn, subscriber, clientID)
	go h.readPump(conn, subscriber, clientID)
}

// readPump consumes client frames to detect disconnect and service pongs.
func (h *WebSocketHandler) readPump(conn *websocket.Conn, subscriber chan Event, clientID string) {
	defer func() {
		h.eventBus.Unsubscribe(subscriber)
		conn.Close()
		h.logger.Info("Event WebSocket client disconnected",
			zap.String("client_id", clientID),
		)
	}()

	conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongTimeout))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error",
					zap.Error(err),
					zap.String("client_id", clientID),
				)
			}
			return
		}
	}
}

// writePump forwards bus events and keeps the connection alive with pings.
func (h *WebSocketHandler) writePump(conn *websocket.Conn, subscriber chan Event, clientID string) {
	ticker := time.NewTicker(wsPingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-subscriber:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Error("Failed to marshal event", zap.Error(err))
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Error("WebSocket write error",
					zap.Error(err),
					zap.String("client_id", clientID),
				)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
