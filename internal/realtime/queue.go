// Package realtime pushes queue updates to connected dashboards over
// websocket, so the check-in screens do not have to poll /api/queue.
package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"backend-checkin/internal/store"
)

const (
	pingInterval   = 20 * time.Second
	readTimeout    = 60 * time.Second
	writeTimeout   = 5 * time.Second
	broadcastDelay = 50 * time.Millisecond
)

type client struct {
	conn      *websocket.Conn
	writeMux  sync.Mutex
	closeChan chan struct{}
	closed    bool
	id        string
}

// Hub tracks connected clients and rebroadcasts queue stats whenever
// a queue mutation happens. Broadcasts are debounced so a burst of
// mutations produces a single stats computation.
type Hub struct {
	store *store.Store

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client

	timerMu sync.Mutex
	timer   *time.Timer
}

func NewHub(s *store.Store) *Hub {
	return &Hub{
		store:   s,
		clients: make(map[*websocket.Conn]*client),
	}
}

type queueUpdate struct {
	Type      string            `json:"type"`
	Stats     any               `json:"stats"`
	Total     int               `json:"total"`
	Timestamp time.Time         `json:"timestamp"`
}

func (h *Hub) snapshot() []byte {
	msg := queueUpdate{
		Type:      "queue_update",
		Stats:     h.store.GetQueueStats(),
		Total:     len(h.store.GetAllQueueItems()),
		Timestamp: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[queue-ws] marshal: %v", err)
		return nil
	}
	return payload
}

// Serve handles one websocket connection. Register with
// websocket.New(hub.Serve).
func (h *Hub) Serve(c *websocket.Conn) {
	cl := &client{
		conn:      c,
		closeChan: make(chan struct{}),
		id:        "client-" + uuid.NewString(),
	}

	log.Printf("[queue-ws] %s connected from %s", cl.id, c.RemoteAddr())
	h.register(c, cl)
	defer h.unregister(c, cl)

	c.SetReadDeadline(time.Now().Add(readTimeout))
	c.SetPongHandler(func(string) error {
		c.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// Initial snapshot for this client only.
	if payload := h.snapshot(); payload != nil {
		cl.write(payload)
	}

	go h.pingLoop(cl)

	// Read loop; clients never send anything meaningful, this just
	// drains control frames and detects close.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure,
			) {
				log.Printf("[queue-ws] %s unexpected close: %v", cl.id, err)
			}
			return
		}
	}
}

func (h *Hub) pingLoop(cl *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cl.writeMux.Lock()
			if cl.closed {
				cl.writeMux.Unlock()
				return
			}
			cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := cl.conn.WriteMessage(websocket.PingMessage, nil)
			cl.writeMux.Unlock()
			if err != nil {
				return
			}
		case <-cl.closeChan:
			return
		}
	}
}

// Broadcast schedules a stats push to every client. Debounced: a
// burst of queue mutations collapses into one broadcast.
func (h *Hub) Broadcast() {
	h.timerMu.Lock()
	defer h.timerMu.Unlock()

	if h.timer != nil {
		h.timer.Reset(broadcastDelay)
		return
	}
	h.timer = time.AfterFunc(broadcastDelay, func() {
		h.timerMu.Lock()
		h.timer = nil
		h.timerMu.Unlock()
		h.broadcastNow()
	})
}

func (h *Hub) broadcastNow() {
	payload := h.snapshot()
	if payload == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for _, cl := range h.clients {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.write(payload); err != nil {
			log.Printf("[queue-ws] %s write: %v", cl.id, err)
		}
	}
}

func (cl *client) write(payload []byte) error {
	cl.writeMux.Lock()
	defer cl.writeMux.Unlock()
	if cl.closed {
		return nil
	}
	cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return cl.conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Hub) register(c *websocket.Conn, cl *client) {
	h.mu.Lock()
	h.clients[c] = cl
	total := len(h.clients)
	h.mu.Unlock()
	log.Printf("[queue-ws] %s registered, total: %d", cl.id, total)
}

func (h *Hub) unregister(c *websocket.Conn, cl *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()

	cl.writeMux.Lock()
	if !cl.closed {
		cl.closed = true
		close(cl.closeChan)
	}
	cl.writeMux.Unlock()
	log.Printf("[queue-ws] %s disconnected", cl.id)
}
