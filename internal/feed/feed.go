// Package feed streams live list projections to connected clients over
// WebSocket. Each authenticated connection owns one sync controller whose
// lifetime is bound to the connection: the controller is closed, and its
// store subscriptions released, when the socket goes away.
package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	ws "github.com/coder/websocket"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/realtime"
	"github.com/dukerupert/larder/internal/sync"
)

const pingInterval = 30 * time.Second

// frame is one JSON message on the feed.
type frame struct {
	Type    string      `json:"type"`
	Event   *sync.Event `json:"event,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Handle returns an HTTP handler that upgrades the connection and streams
// projection updates for the authenticated user.
func Handle(store realtime.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserID(r.Context())
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // Clients connect from app shells on any origin
		})
		if err != nil {
			logger.Warn("feed: accept failed", "error", err)
			return
		}

		c := &client{
			conn:   conn,
			logger: logger.With("user_id", userID),
		}
		c.run(r.Context(), store, userID)
	}
}

type client struct {
	conn   *ws.Conn
	logger *slog.Logger
}

// run blocks until the connection closes. The sync controller lives
// exactly as long as the connection.
func (c *client) run(ctx context.Context, store realtime.Store, userID string) {
	controller, err := sync.NewController(userID, store, c.logger)
	if err != nil {
		c.logger.Error("feed: start controller", "error", err)
		c.conn.Close(ws.StatusInternalError, "sync unavailable")
		return
	}
	defer controller.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writePump(ctx, controller)
	c.readPump(ctx)
}

// readPump reads and discards incoming messages. It returns on error
// (connection close), which tears the session down.
func (c *client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// writePump forwards projection events and parse warnings as JSON frames
// and sends periodic pings to detect stale connections.
func (c *client) writePump(ctx context.Context, controller *sync.Controller) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-controller.Events():
			if err := c.write(ctx, frame{Type: "projection", Event: &ev}); err != nil {
				return
			}
		case err := <-controller.Errors():
			if werr := c.write(ctx, frame{Type: "warning", Message: err.Error()}); werr != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (c *client) write(ctx context.Context, f frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		c.logger.Error("feed: marshal frame", "error", err)
		return nil
	}
	return c.conn.Write(ctx, ws.MessageText, data)
}
