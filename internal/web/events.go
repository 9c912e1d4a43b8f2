package web

import (
	"log"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Transport names which dispatcher handled an attempt.
type Transport string

const (
	TransportLocal  Transport = "local"
	TransportRemote Transport = "remote"
)

// Event describes one dispatch attempt. It reports what this process did
// with the buffer, not what the printer did with the job afterwards.
type Event struct {
	JobID     string    `json:"jobId"`
	Transport Transport `json:"transport"`
	Target    string    `json:"target"`
	Bytes     int       `json:"bytes"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	Time      time.Time `json:"time"`
}

// Hub fans dispatch events out to connected WebSocket watchers.
type Hub struct {
	mu       sync.Mutex
	watchers map[*websocket.Conn]chan Event
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{watchers: make(map[*websocket.Conn]chan Event)}
}

// Publish stamps the event and hands it to every watcher. A watcher that
// cannot keep up loses events rather than blocking a dispatch.
func (h *Hub) Publish(ev Event) {
	ev.Time = time.Now()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.watchers {
		select {
		case ch <- ev:
		default:
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Serve upgrades the request and streams events as JSON until the client
// goes away.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[events] Upgrade failed: %v", err)
		return
	}

	ch := make(chan Event, 16)
	h.mu.Lock()
	h.watchers[conn] = ch
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.watchers, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Drain client frames so pings are answered and disconnects surface.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case ev := <-ch:
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("[events] Write failed: %v", err)
				return
			}
		}
	}
}
