// Loopback WebSocket transport for the GUI bridge. One connection per
// front-end window; frames within a connection are served concurrently
// and responses are funneled through a single writer goroutine, as the
// websocket package allows only one concurrent writer per connection.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Request is one command frame from the front-end. ID is echoed back
// verbatim so the caller can match responses to in-flight requests.
type Request struct {
	ID   json.RawMessage `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response is one result frame. Exactly one of Data and Error is
// meaningful: Data when OK, a single opaque message string otherwise.
type Response struct {
	ID    json.RawMessage `json:"id"`
	OK    bool            `json:"ok"`
	Data  interface{}     `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Server serves the command registry over a loopback WebSocket.
type Server struct {
	registry *Registry
	logger   *zap.Logger
	httpSrv  *http.Server
	upgrader websocket.Upgrader
}

// NewServer creates a bridge server bound to addr. The address must be
// a loopback address; config validation enforces this before the
// server is constructed.
func NewServer(addr string, registry *Registry, logger *zap.Logger) *Server {
	s := &Server{
		registry: registry,
		logger:   logger,
		upgrader: websocket.Upgrader{
			// Desktop webviews present shell-specific origins
			// (file://, app://). The socket is loopback-only, so
			// origin filtering adds nothing.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/bridge", s.handleBridge)
	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// Run serves connections until the context is cancelled, then shuts
// the listener down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Bridge listening", zap.String("addr", s.httpSrv.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// handleBridge upgrades the HTTP request and runs the frame loop.
func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("Upgrade failed", zap.Error(err))
		return
	}

	c := &connection{
		conn:     conn,
		send:     make(chan []byte, 64),
		registry: s.registry,
		logger:   s.logger,
	}
	go c.writePump()
	c.readPump(r.Context())
}

// connection is one front-end WebSocket session.
type connection struct {
	conn     *websocket.Conn
	send     chan []byte
	registry *Registry
	logger   *zap.Logger
}

// readPump reads request frames and dispatches each in its own
// goroutine. Snapshot operations are independent (spec'd to own their
// provider handles), so a slow settled CPU sample does not block a
// concurrent disk listing on the same connection.
func (c *connection) readPump(ctx context.Context) {
	defer func() {
		close(c.send)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("Front-end disconnected", zap.Error(err))
			}
			return
		}

		var req Request
		if err := json.Unmarshal(message, &req); err != nil {
			c.logger.Error("Invalid request frame", zap.Error(err))
			c.respond(Response{OK: false, Error: "invalid request frame"})
			continue
		}

		go c.serve(ctx, req)
	}
}

// serve runs one command and queues the response frame. Errors are
// flattened to their message string; the front-end has no structured
// error taxonomy to consume.
func (c *connection) serve(ctx context.Context, req Request) {
	data, err := c.registry.Dispatch(ctx, req.Cmd, req.Args)
	resp := Response{ID: req.ID, OK: err == nil, Data: data}
	if err != nil {
		resp.Data = nil
		resp.Error = err.Error()
		c.logger.Error("Command failed",
			zap.String("cmd", req.Cmd),
			zap.Error(err))
	} else {
		c.logger.Debug("Command served", zap.String("cmd", req.Cmd))
	}
	c.respond(resp)
}

// respond marshals and queues one response frame. Frames for a closed
// connection are dropped.
func (c *connection) respond(resp Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Error("Failed to marshal response", zap.Error(err))
		return
	}
	defer func() {
		// Send on a closed channel means the reader already shut the
		// connection down; the frame has nowhere to go.
		_ = recover()
	}()
	c.send <- payload
}

// writePump is the single writer for the connection. It drains queued
// response frames and keeps the connection alive with pings.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
