// Package ws is the websocket delivery. It upgrades HTTP requests, owns the
// per-connection read/write pumps and feeds connections into the realtime
// subsystem through the Sender interface.
package ws

import (
	"sync"
	"time"

	"tracker/internal/errors"
	"tracker/internal/realtime"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingInterval   = 25 * time.Second
	wsMaxPayloadSize = 64 * 1024
)

// client wraps one websocket connection behind a buffered send channel so
// emitters never block on a slow socket.
type client struct {
	conn *websocket.Conn
	send chan realtime.Envelope

	closeOnce sync.Once
	done      chan struct{}
}

func newClient(conn *websocket.Conn, sendBuffer int) *client {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}

	return &client{
		conn: conn,
		send: make(chan realtime.Envelope, sendBuffer),
		done: make(chan struct{}),
	}
}

// Send queues an envelope for delivery. A full buffer or a closed connection
// drops the envelope with an error; delivery is best-effort by contract.
func (c *client) Send(envelope realtime.Envelope) error {
	select {
	case <-c.done:
		return errors.New("connection closed")
	default:
	}

	select {
	case c.send <- envelope:
		return nil
	default:
		return errors.New("send buffer full")
	}
}

// Close shuts the write pump down and closes the socket. Safe to call more
// than once.
func (c *client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// writePump drains the send channel onto the socket. It owns all writes,
// including the keepalive pings; gorilla allows only one writer.
func (c *client) writePump() {
	ticker := time.NewTicker(wsPingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case envelope := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteJSON(envelope); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
