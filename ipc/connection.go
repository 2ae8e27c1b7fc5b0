package ipc

import (
	"fmt"
	"log/slog"
	"net"
)

// Handler answers one envelope. A nil envelope means no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection is one simulator session. The host sends a snapshot and blocks
// until the controller answers it, so every message it sends gets exactly
// one reply: the handler's, or an error envelope.
type Connection struct {
	conn     net.Conn
	handlers map[string]Handler
	Player   int
}

func NewConnection(conn net.Conn, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{conn: conn, handlers: handlers}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// ReadLoop serves the session until the host hangs up or a reply cannot be
// written. It closes the underlying conn on return.
func (c *Connection) ReadLoop() {
	defer c.conn.Close()

	for {
		env, err := ReadEnvelope(c.conn)
		if err != nil {
			slog.Info("session ended", "player", c.Player, "error", err)
			return
		}

		resp := c.answer(env)
		if resp == nil {
			continue
		}
		if err := WriteEnvelope(c.conn, *resp); err != nil {
			slog.Error("failed to send reply", "type", resp.Type, "player", c.Player, "error", err)
			return
		}
		slog.Debug("sent reply", "request", env.Type, "type", resp.Type, "player", c.Player)
	}
}

// answer runs the handler for env and turns a missing handler or a handler
// error into an error envelope.
func (c *Connection) answer(env Envelope) *Envelope {
	handler, ok := c.handlers[env.Type]
	if !ok {
		slog.Warn("no handler for message type", "type", env.Type, "player", c.Player)
		return errorEnvelope(env.Type, fmt.Errorf("unsupported message type %q", env.Type))
	}

	resp, err := handler(env)
	if err != nil {
		slog.Error("handler error", "type", env.Type, "player", c.Player, "error", err)
		return errorEnvelope(env.Type, err)
	}
	return resp
}

func errorEnvelope(msgType string, cause error) *Envelope {
	env, err := NewEnvelope(TypeError, ErrorMessage{Type: msgType, Error: cause.Error()})
	if err != nil {
		return nil
	}
	return &env
}
