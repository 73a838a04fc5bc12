package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tracker/config"
	"tracker/internal/realtime"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades `GET /ws/activities` requests into realtime sessions.
type Handler struct {
	gateway  *realtime.Gateway
	registry *realtime.Registry
	logger   *slog.Logger
	upgrader websocket.Upgrader

	sendBuffer int
}

// NewHandler is the constructor for the websocket Handler, injected by Fx.
func NewHandler(gateway *realtime.Gateway, registry *realtime.Registry, logger *slog.Logger, cfg *config.Config) *Handler {
	return &Handler{
		gateway:  gateway,
		registry: registry,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
		sendBuffer: cfg.Realtime.SendBuffer,
	}
}

// inboundFrame is the only shape clients send after connecting.
type inboundFrame struct {
	Event string `json:"event"`
}

// Handle runs one connection end to end: upgrade, register, authenticate,
// then pump inbound requests until the socket closes. Registration happens
// before authentication so the connecting client receives its own ONLINE
// broadcast.
func (h *Handler) Handle(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}

	connID := uuid.NewString()
	cl := newClient(conn, h.sendBuffer)
	go cl.writePump()

	h.registry.Add(connID, cl)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	handshake := realtime.Handshake{
		Authorization: c.Request().Header.Get("Authorization"),
	}
	if token := c.QueryParam("token"); token != "" {
		handshake.Auth = &realtime.AuthPayload{Token: token}
	}

	session, err := h.gateway.HandleConnect(ctx, connID, handshake)
	if err != nil {
		h.registry.Remove(connID)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "authentication failed"),
			time.Now().Add(wsWriteWait))
		cl.Close()

		return nil
	}

	h.readLoop(ctx, conn, session)

	cancel()
	h.registry.Remove(connID)
	// The request context is tearing down with the socket; presence teardown
	// gets its own context.
	h.gateway.HandleDisconnect(context.Background(), session)
	cl.Close()

	return nil
}

func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn, session *realtime.Session) {
	conn.SetReadLimit(wsMaxPayloadSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var frame inboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.logger.LogAttrs(ctx, slog.LevelDebug, "dropping malformed frame",
				slog.String("connID", session.ConnID),
				slog.String("error", err.Error()),
			)

			continue
		}

		switch frame.Event {
		case "get-online-users":
			h.gateway.HandleOnlineUsers(ctx, session)
		case "ping":
			h.gateway.HandlePing(ctx, session)
		default:
			h.logger.LogAttrs(ctx, slog.LevelDebug, "ignoring unknown event",
				slog.String("connID", session.ConnID),
				slog.String("event", frame.Event),
			)
		}
	}
}
