package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/autoguardian/vehicle-safety/internal/application/port"
	wsInfra "github.com/autoguardian/vehicle-safety/internal/infrastructure/notification/websocket"
	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/gorilla/websocket"
)

// WebSocketHandler upgrades observers and sends them the current state
// before live updates.
type WebSocketHandler struct {
	hub            *wsInfra.Hub
	state          port.StateReader
	logger         *logger.Logger
	allowedOrigins map[string]struct{}
	upgrader       websocket.Upgrader
}

func NewWebSocketHandler(
	hub *wsInfra.Hub,
	state port.StateReader,
	allowedOrigins []string,
	logger *logger.Logger,
) *WebSocketHandler {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	handler := &WebSocketHandler{
		hub:            hub,
		state:          state,
		logger:         logger,
		allowedOrigins: originMap,
	}

	handler.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     handler.checkOrigin,
	}

	return handler
}

func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return false
	}

	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	normalized := parsed.Scheme + "://" + parsed.Host
	if _, ok := h.allowedOrigins[normalized]; ok {
		return true
	}
	if _, ok := h.allowedOrigins["*"]; ok {
		return true
	}

	return false
}

func (h *WebSocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err.Error())
		return
	}

	client := wsInfra.NewClient(h.hub, conn, h.logger)
	client.Enqueue(wsInfra.Message{Type: wsInfra.MessageTypeState, Data: h.state.Snapshot()})
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
