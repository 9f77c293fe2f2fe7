// Package ws pushes quiz activity events to connected intranet dashboards.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// feedMessage is one event bound for the feed or for a single user
type feedMessage struct {
	toUser string // Empty means every connection
	data   []byte
}

// Connection represents one subscribed dashboard
type Connection struct {
	UserID string
	Send   chan []byte
}

// Hub fans quiz events out to every connected dashboard. One goroutine
// owns the connection maps; registration and delivery go through
// channels, so no further locking is needed.
type Hub struct {
	conns  map[*Connection]struct{}
	byUser map[string]map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	messages   chan feedMessage

	connected atomic.Int64
}

// NewHub creates a running hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]struct{}),
		byUser:     make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		messages:   make(chan feedMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.conns[conn] = struct{}{}
			if h.byUser[conn.UserID] == nil {
				h.byUser[conn.UserID] = make(map[*Connection]struct{})
			}
			h.byUser[conn.UserID][conn] = struct{}{}
			h.connected.Store(int64(len(h.conns)))
			slog.Debug("dashboard connected", "userId", conn.UserID, "connections", len(h.conns))

		case conn := <-h.unregister:
			if _, ok := h.conns[conn]; !ok {
				continue
			}
			delete(h.conns, conn)
			if peers, ok := h.byUser[conn.UserID]; ok {
				delete(peers, conn)
				if len(peers) == 0 {
					delete(h.byUser, conn.UserID)
				}
			}
			close(conn.Send)
			h.connected.Store(int64(len(h.conns)))
			slog.Debug("dashboard disconnected", "userId", conn.UserID, "connections", len(h.conns))

		case msg := <-h.messages:
			if msg.toUser != "" {
				for conn := range h.byUser[msg.toUser] {
					h.deliver(conn, msg.data)
				}
				continue
			}
			for conn := range h.conns {
				h.deliver(conn, msg.data)
			}
		}
	}
}

// deliver drops the message when the connection's buffer is full; a slow
// dashboard must not stall the feed.
func (h *Hub) deliver(conn *Connection, data []byte) {
	select {
	case conn.Send <- data:
	default:
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Connected returns the current connection count
func (h *Hub) Connected() int64 {
	return h.connected.Load()
}

// Broadcast sends an event to every connection (implements service.Broadcaster)
func (h *Hub) Broadcast(event string, payload interface{}) {
	h.enqueue("", event, payload)
}

// BroadcastToUser sends an event to one user's connections (implements service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, event string, payload interface{}) {
	h.enqueue(userID, event, payload)
}

func (h *Hub) enqueue(toUser, event string, payload interface{}) {
	data, err := json.Marshal(&model.Event{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		slog.Error("failed to marshal event", "event", event, "error", err)
		return
	}
	select {
	case h.messages <- feedMessage{toUser: toUser, data: data}:
	default:
		slog.Warn("event feed saturated, dropping event", "event", event)
	}
}
