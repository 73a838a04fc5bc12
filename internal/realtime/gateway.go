package realtime

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"tracker/config"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
)

// AuthPayload is the connect-time auth block a client may send alongside the
// upgrade request.
type AuthPayload struct {
	Token string `json:"token"`
}

// Handshake carries the credentials a connecting client presented. The
// connect-payload token wins over the Authorization header when both are set.
type Handshake struct {
	Auth          *AuthPayload
	Authorization string
}

func (h Handshake) token() string {
	if h.Auth != nil && h.Auth.Token != "" {
		return h.Auth.Token
	}

	const prefix = "Bearer "
	if len(h.Authorization) > len(prefix) && strings.EqualFold(h.Authorization[:len(prefix)], prefix) {
		return h.Authorization[len(prefix):]
	}

	return ""
}

// Session identifies one authenticated connection.
type Session struct {
	ConnID string
	UserID int64
	Email  string
}

// Gateway drives the presence lifecycle of websocket connections: a
// connection authenticates exactly once, becomes the user's current
// connection, and on close tears its presence down unless a reconnect
// already superseded it.
type Gateway struct {
	tokens    service.TokenService
	users     repository.UserRepository
	directory *PresenceDirectory
	bus       *EventBus
	replay    *ReplayEngine
	logger    *slog.Logger

	replayDelay time.Duration
}

// NewGateway creates the presence lifecycle gateway.
func NewGateway(
	tokens service.TokenService,
	users repository.UserRepository,
	directory *PresenceDirectory,
	bus *EventBus,
	replay *ReplayEngine,
	logger *slog.Logger,
	cfg *config.RealtimeConfig,
) *Gateway {
	return &Gateway{
		tokens:      tokens,
		users:       users,
		directory:   directory,
		bus:         bus,
		replay:      replay,
		logger:      logger,
		replayDelay: cfg.ReplayDelay,
	}
}

// HandleConnect authenticates a new connection and brings the user online.
// An authentication failure is terminal: the caller must close the socket,
// and the attempt leaves no presence trace. On success the user's durable
// presence flips to ONLINE (persistence failures are logged and swallowed),
// the transition is broadcast, and a replay of missed activity is scheduled.
func (g *Gateway) HandleConnect(ctx context.Context, connID string, handshake Handshake) (*Session, error) {
	token := handshake.token()
	if token == "" {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "connection rejected: no token",
			slog.String("connID", connID),
		)

		return nil, domainerrors.ErrTokenInvalid
	}

	claims, err := g.tokens.VerifyToken(token)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "connection rejected: token verification failed",
			slog.String("connID", connID),
			slog.String("error", err.Error()),
		)

		return nil, domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	}

	// The offline watermark must be read before the ONLINE write clears it,
	// or a long gap would silently shrink to the lookback window.
	var watermark time.Time
	if user, err := g.users.FindByID(ctx, claims.UserID); err != nil {
		g.logger.LogAttrs(ctx, slog.LevelWarn, "failed to load user for replay watermark",
			slog.Int64("userID", claims.UserID),
			slog.String("error", err.Error()),
		)
	} else if lastSeen, ok := user.Presence.LastSeen(); ok {
		watermark = lastSeen
	}

	g.directory.Record(claims.UserID, connID)

	if err := g.users.UpdatePresence(ctx, claims.UserID, entity.Online()); err != nil {
		g.logger.LogAttrs(ctx, slog.LevelError, "failed to persist ONLINE presence",
			slog.Int64("userID", claims.UserID),
			slog.String("error", err.Error()),
		)
	}

	g.bus.Broadcast(ctx, PresenceChanged{
		UserID:    claims.UserID,
		Status:    entity.StatusOnline,
		UserEmail: claims.Email,
	})

	g.logger.LogAttrs(ctx, slog.LevelInfo, "user connected",
		slog.Int64("userID", claims.UserID),
		slog.String("connID", connID),
	)

	g.scheduleReplay(ctx, claims.UserID, watermark)

	return &Session{
		ConnID: connID,
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}

// HandleDisconnect tears down an authenticated connection. A connection that
// never authenticated has nothing to tear down. When a reconnect already
// replaced this connection in the directory, the teardown is skipped so the
// newer session survives. Otherwise the durable presence flips to OFFLINE
// with the disconnect time as the replay watermark, and the transition is
// broadcast even when persistence failed.
func (g *Gateway) HandleDisconnect(ctx context.Context, session *Session) {
	if session == nil {
		return
	}

	if !g.directory.Remove(session.UserID, session.ConnID) {
		return
	}

	if err := g.users.UpdatePresence(ctx, session.UserID, entity.OfflineSince(time.Now().UTC())); err != nil {
		g.logger.LogAttrs(ctx, slog.LevelError, "failed to persist OFFLINE presence",
			slog.Int64("userID", session.UserID),
			slog.String("error", err.Error()),
		)
	}

	g.bus.Broadcast(ctx, PresenceChanged{
		UserID:    session.UserID,
		Status:    entity.StatusOffline,
		UserEmail: session.Email,
	})

	g.logger.LogAttrs(ctx, slog.LevelInfo, "user disconnected",
		slog.Int64("userID", session.UserID),
		slog.String("connID", session.ConnID),
	)
}

// HandleOnlineUsers answers a get-online-users request with every user whose
// durable presence is ONLINE.
func (g *Gateway) HandleOnlineUsers(ctx context.Context, session *Session) {
	online, err := g.users.FindOnline(ctx)
	if err != nil {
		g.logger.LogAttrs(ctx, slog.LevelError, "failed to query online users",
			slog.String("error", err.Error()),
		)

		return
	}

	users := make([]OnlineUser, 0, len(online))
	for _, user := range online {
		row := OnlineUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Status: user.Presence.Status(),
			Score:  user.Score,
		}
		if lastSeen, ok := user.Presence.LastSeen(); ok {
			row.LastSeen = &lastSeen
		}
		users = append(users, row)
	}

	g.bus.Unicast(ctx, session.ConnID, OnlineUsers{
		Users: users,
		Count: len(users),
	})
}

// HandlePing answers a ping request.
func (g *Gateway) HandlePing(ctx context.Context, session *Session) {
	g.bus.Unicast(ctx, session.ConnID, Pong{
		Timestamp: time.Now().UTC(),
		UserID:    session.UserID,
	})
}

// scheduleReplay runs the replay engine after the configured settle delay,
// giving the freshly connected client time to finish its initial data load.
func (g *Gateway) scheduleReplay(ctx context.Context, userID int64, watermark time.Time) {
	go func() {
		if g.replayDelay > 0 {
			timer := time.NewTimer(g.replayDelay)
			defer timer.Stop()

			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
		}

		if err := g.replay.Run(ctx, userID, watermark); err != nil {
			g.logger.LogAttrs(ctx, slog.LevelError, "replay failed",
				slog.Int64("userID", userID),
				slog.String("error", err.Error()),
			)
		}
	}()
}
