package live

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultPingInterval = 30 * time.Second
	writeWait           = 10 * time.Second
	backlog             = 64
)

var (
	ErrHubClosed   error = errors.New("hub closed")
	ErrBacklogFull error = errors.New("broadcast backlog full")
)

// Hub fans JSON messages out to every connected websocket client. Only the
// Run goroutine writes to connections.
type Hub struct {
	logs         *zap.SugaredLogger
	upgrader     websocket.Upgrader
	clients      map[*websocket.Conn]bool
	broadcast    chan []byte
	register     chan *websocket.Conn
	unregister   chan *websocket.Conn
	done         chan struct{}
	mutex        sync.Mutex
	pingInterval time.Duration
}

func NewHub(logger *zap.SugaredLogger, pingInterval time.Duration) *Hub {
	if pingInterval <= 0 {
		pingInterval = DefaultPingInterval
	}
	return &Hub{
		logs: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:      make(map[*websocket.Conn]bool),
		broadcast:    make(chan []byte, backlog),
		register:     make(chan *websocket.Conn),
		unregister:   make(chan *websocket.Conn),
		done:         make(chan struct{}),
		pingInterval: pingInterval,
	}
}

// Run serves the hub until ctx is done, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mutex.Unlock()
			h.logs.Infow("live client connected", "remote", client.RemoteAddr().String(), "clients", count)

		case client := <-h.unregister:
			h.drop(client)

		case message := <-h.broadcast:
			h.send(websocket.TextMessage, message)

		case <-ticker.C:
			h.send(websocket.PingMessage, nil)
		}
	}
}

// Publish queues v, encoded as JSON, for every connected client.
func (h *Hub) Publish(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	select {
	case <-h.done:
		return ErrHubClosed
	default:
	}

	select {
	case h.broadcast <- data:
		return nil
	default:
		return ErrBacklogFull
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logs.Warnw("websocket upgrade", "error", err)
		return
	}

	select {
	case h.register <- conn:
	case <-h.done:
		conn.Close()
		return
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logs.Warnw("live client read", "error", err)
			}
			break
		}
	}

	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

func (h *Hub) send(messageType int, message []byte) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		_ = client.SetWriteDeadline(time.Now().Add(writeWait))
		if err := client.WriteMessage(messageType, message); err != nil {
			h.logs.Warnw("live client write", "error", err, "remote", client.RemoteAddr().String())
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) drop(client *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		client.Close()
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	for client := range h.clients {
		_ = client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		client.Close()
		delete(h.clients, client)
	}
	h.mutex.Unlock()

	close(h.done)
}
