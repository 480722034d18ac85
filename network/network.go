package network

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"circletrace/logger"
	"circletrace/protocol"
	"circletrace/session"
)

const (
	readLimit    = 1 << 20 // 1MB
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	writeWait    = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsConn adapts a gorilla connection to session.Conn. gorilla allows a single
// concurrent writer, so sends and pings share a mutex.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) Send(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *wsConn) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

type Server struct {
	manager *session.Manager
}

func NewServer(m *session.Manager) *Server {
	return &Server{manager: m}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/health/live", healthHandler("alive"))
	mux.HandleFunc("/health/ready", healthHandler("ready"))
	mux.HandleFunc("/sessions/", s.handleCanvasPNG)
	return mux
}

func healthHandler(status string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "{\"status\":%q}\n", status)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn(logger.Fields{"err": err.Error()}, "websocket upgrade failed")
		return
	}

	// Basic timeouts + pong handling keeps connections healthy.
	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	wc := &wsConn{conn: conn}

	hello, err := readHello(conn)
	if err != nil {
		logger.Debug(logger.Fields{"err": err.Error()}, "handshake failed")
		_ = conn.Close()
		return
	}

	sess := s.manager.Open(wc, hello.Name)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			logger.Debug(logger.Fields{"session": sess.ID, "err": err.Error()}, "bad envelope")
			continue
		}
		switch env.T {
		case protocol.MsgPointer:
			ptr, err := protocol.DecodePayload[protocol.Pointer](env)
			if err != nil {
				logger.Debug(logger.Fields{"session": sess.ID, "err": err.Error()}, "bad pointer payload")
				continue
			}
			sess.Inbox <- session.PointerEvent{Pointer: ptr}
		default:
			logger.Debug(logger.Fields{"session": sess.ID, "type": env.T}, "dropping unknown message type")
		}
	}

	close(done)
	sess.Inbox <- session.Detach{}
}

// readHello waits for the client's opening message. Anything else is a
// protocol violation and drops the connection.
func readHello(conn *websocket.Conn) (protocol.Hello, error) {
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, fmt.Errorf("expected %q, got %q", protocol.MsgHello, env.T)
	}
	return protocol.DecodePayload[protocol.Hello](env)
}

// handleCanvasPNG serves GET /sessions/{id}/canvas.png with the current
// raster. The snapshot is produced by the session goroutine so the surface is
// never touched concurrently.
func (s *Server) handleCanvasPNG(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/sessions/")
	id, ok := strings.CutSuffix(rest, "/canvas.png")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}

	sess, ok := s.manager.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}

	reply := make(chan []byte, 1)
	select {
	case sess.Inbox <- session.SnapshotPNG{Reply: reply}:
	case <-time.After(1 * time.Second):
		http.Error(w, "session busy", http.StatusServiceUnavailable)
		return
	}

	select {
	case b := <-reply:
		if b == nil {
			http.Error(w, "no canvas", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(b)
	case <-time.After(1 * time.Second):
		http.Error(w, "session busy", http.StatusServiceUnavailable)
	}
}
