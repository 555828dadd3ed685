// Package server exposes the nova pipeline to editors over a websocket.
//
// An editor sends {"type":"check","payload":{"id":..,"filename":..,"source":..}}
// on every save and receives a "result" carrying either the program outline
// or the positioned diagnostic, or an "error" when the request itself could
// not be served.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/you-not-fish/nova/internal/compiler"
	"github.com/you-not-fish/nova/internal/logger"
)

// Config holds the editor bridge settings.
type Config struct {
	CheckTimeout   time.Duration // abandon a check after this long
	MaxSourceBytes int64         // reject larger sources
	Logger         *slog.Logger
}

// Handler handles websocket connections from editors.
type Handler struct {
	cfg      Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
	active   sync.WaitGroup // open editor connections
}

// NewHandler creates a new websocket handler
func NewHandler(cfg Config) *Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.New("server")
	}
	return &Handler{
		cfg:    cfg,
		logger: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // editor extensions connect from arbitrary origins
			},
		},
	}
}

// conn is one editor connection. Writes are serialized.
type conn struct {
	ws      *websocket.Conn
	id      string
	writeMu sync.Mutex
}

// ServeHTTP handles websocket upgrade and connections. The connection lives
// as long as the request context, which the server derives from its base
// context.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	h.active.Add(1)
	defer h.active.Done()
	h.handleConnection(r.Context(), &conn{ws: ws, id: uuid.New().String()})
}

// handleConnection reads requests until the editor goes away or ctx is done.
func (h *Handler) handleConnection(ctx context.Context, c *conn) {
	defer c.ws.Close()

	log := h.logger.With("conn", c.id)
	log.Info("editor connected", "remote", c.ws.RemoteAddr().String())

	// Unblock the read loop when the server goes away.
	stop := context.AfterFunc(ctx, func() {
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
		c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		c.ws.Close()
	})
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	if h.cfg.MaxSourceBytes > 0 {
		// room for the JSON envelope around the source
		c.ws.SetReadLimit(2*h.cfg.MaxSourceBytes + 4096)
	}

	for {
		var msg WSMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				log.Info("connection closed on shutdown")
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read error", "error", err)
			} else {
				log.Info("editor disconnected")
			}
			return
		}

		switch msg.Type {
		case "ping":
			h.send(c, WSResponse{Type: "pong"})

		case "check":
			var payload CheckPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.sendError(c, "", CodeInvalidPayload, "invalid check payload")
				continue
			}
			if payload.ID == "" {
				payload.ID = uuid.New().String()
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				h.handleCheck(ctx, log, c, payload)
			}()

		default:
			h.sendError(c, "", CodeUnknownType, "unknown message type: "+msg.Type)
		}
	}
}

// handleCheck runs the pipeline for one request and replies.
func (h *Handler) handleCheck(ctx context.Context, log *slog.Logger, c *conn, p CheckPayload) {
	if h.cfg.MaxSourceBytes > 0 && int64(len(p.Source)) > h.cfg.MaxSourceBytes {
		h.sendError(c, p.ID, CodeTooLarge, fmt.Sprintf("source exceeds %d bytes", h.cfg.MaxSourceBytes))
		return
	}
	filename := p.Filename
	if filename == "" {
		filename = "untitled.nova"
	}

	if h.cfg.CheckTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.CheckTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := compiler.CompileContext(ctx, filename, p.Source, compiler.Options{Logger: log})
	elapsed := time.Since(start)

	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn("check timed out", "id", p.ID, "file", filename, "timeout", h.cfg.CheckTimeout)
		h.sendError(c, p.ID, CodeTimeout, fmt.Sprintf("check exceeded %s", h.cfg.CheckTimeout))
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	result := ResultPayload{ID: p.ID, ElapsedMS: elapsed.Milliseconds()}
	if err != nil {
		d, ok := compiler.Diagnose(err)
		if !ok {
			log.Error("check failed", "id", p.ID, "error", err)
			h.sendError(c, p.ID, CodeInternal, err.Error())
			return
		}
		result.Diagnostic = &d
	} else {
		o := compiler.BuildOutline(res.Program)
		result.OK = true
		result.Outline = &o
	}

	log.Debug("check complete", "id", p.ID, "file", filename, "ok", result.OK, "elapsed", elapsed)
	h.send(c, WSResponse{Type: "result", Payload: result})
}

// send sends a response message via websocket
func (h *Handler) send(c *conn, resp WSResponse) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteJSON(resp); err != nil {
		h.logger.Error("websocket send error", "conn", c.id, "error", err)
	}
}

// sendError sends an error response via websocket
func (h *Handler) sendError(c *conn, id, code, message string) {
	h.send(c, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			ID:      id,
			Code:    code,
			Message: message,
		},
	})
}

// NewMux routes /ws to the websocket handler and /healthz to a liveness
// probe.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"status":"ok"}`)
	})
	return mux
}

// ListenAndServe serves the bridge on addr until ctx is done. Open editor
// connections are closed and in-flight checks cancelled on the way out.
func ListenAndServe(ctx context.Context, addr string, cfg Config) error {
	h := NewHandler(cfg)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewMux(h),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		// Shutdown does not track hijacked connections.
		closed := make(chan struct{})
		go func() {
			h.active.Wait()
			close(closed)
		}()
		select {
		case <-closed:
			return nil
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown: %w", shutdownCtx.Err())
		}
	}
}
