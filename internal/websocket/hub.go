package websocket

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"moodmeter-srv/pkg/log"
)

// Hub maintains the set of active connections grouped by room and fans
// events out to them. A room is either a canonical channel key (general
// audience) or panel:<key> (panel audience).
type Hub struct {
	rooms map[string][]*Connection
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection

	broadcast chan *BroadcastMessage

	// Metrics
	totalConnections    atomic.Int64
	totalMessagesSent   atomic.Int64
	totalMessagesFailed atomic.Int64

	maxConnections int

	logger log.Logger

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a new Hub instance
func NewHub(logger log.Logger, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		rooms:          make(map[string][]*Connection),
		register:       make(chan *Connection, 100),
		unregister:     make(chan *Connection, 100),
		broadcast:      make(chan *BroadcastMessage, 1000),
		maxConnections: maxConnections,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.logger.Info(context.Background(), "Hub shutting down...")
			h.closeAllConnections()
			return

		case conn := <-h.register:
			h.registerConnection(conn)

		case conn := <-h.unregister:
			h.unregisterConnection(conn)

		case msg := <-h.broadcast:
			h.broadcastToRoom(msg)
		}
	}
}

// ToChannel sends an event to the channel's general audience.
func (h *Hub) ToChannel(key string, event string, payload any) {
	h.send(key, event, payload)
}

// ToPanel sends an event to the channel's panel audience only.
func (h *Hub) ToPanel(key string, event string, payload any) {
	h.send(PanelRoom(key), event, payload)
}

func (h *Hub) send(room string, event string, payload any) {
	msg, err := NewMessage(event, payload)
	if err != nil {
		h.logger.Errorf(context.Background(), "Failed to marshal %s event for room %s: %v", event, room, err)
		h.totalMessagesFailed.Add(1)
		return
	}

	select {
	case h.broadcast <- &BroadcastMessage{Room: room, Message: msg}:
	case <-time.After(time.Second):
		h.logger.Warnf(context.Background(), "Timeout queueing %s event for room %s", event, room)
		h.totalMessagesFailed.Add(1)
	}
}

// registerConnection registers a new connection
func (h *Hub) registerConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.getTotalConnectionsLocked() >= h.maxConnections {
		h.logger.Warnf(context.Background(), "Max connections reached, rejecting client for room: %s", conn.room)
		go conn.Close()
		return
	}

	h.rooms[conn.room] = append(h.rooms[conn.room], conn)
	h.totalConnections.Add(1)

	h.logger.Infof(context.Background(),
		"Client joined room %s (total connections: %d, room connections: %d)",
		conn.room,
		h.getTotalConnectionsLocked(),
		len(h.rooms[conn.room]),
	)
}

// unregisterConnection unregisters a connection
func (h *Hub) unregisterConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	connections, exists := h.rooms[conn.room]
	if !exists {
		return
	}

	for i, c := range connections {
		if c == conn {
			h.rooms[conn.room] = append(connections[:i], connections[i+1:]...)
			h.totalConnections.Add(-1)

			close(conn.send)

			if len(h.rooms[conn.room]) == 0 {
				delete(h.rooms, conn.room)
				h.logger.Infof(context.Background(), "Room emptied: %s", conn.room)
			} else {
				h.logger.Infof(context.Background(),
					"Client left room %s (remaining connections: %d)",
					conn.room,
					len(h.rooms[conn.room]),
				)
			}

			break
		}
	}
}

// broadcastToRoom sends a message to every connection in a room. Rooms
// with no listeners are skipped silently.
func (h *Hub) broadcastToRoom(msg *BroadcastMessage) {
	h.mu.RLock()
	connections, exists := h.rooms[msg.Room]
	h.mu.RUnlock()

	if !exists || len(connections) == 0 {
		return
	}

	data, err := msg.Message.ToJSON()
	if err != nil {
		h.logger.Errorf(context.Background(), "Failed to marshal message: %v", err)
		h.totalMessagesFailed.Add(1)
		return
	}

	sentCount := 0
	for _, conn := range connections {
		select {
		case conn.send <- data:
			sentCount++
		default:
			// Connection's send buffer is full, skip
			h.logger.Warnf(context.Background(), "Dropped %s event for room %s (buffer full)", msg.Message.Event, msg.Room)
			h.totalMessagesFailed.Add(1)
		}
	}

	h.totalMessagesSent.Add(int64(sentCount))
}

// closeAllConnections closes all active connections
func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, connections := range h.rooms {
		for _, conn := range connections {
			conn.Close()
		}
		h.logger.Infof(context.Background(), "Closed all connections in room: %s", room)
	}

	h.rooms = make(map[string][]*Connection)
}

// GetStats returns hub statistics
func (h *Hub) GetStats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HubStats{
		ActiveConnections:   h.getTotalConnectionsLocked(),
		ActiveRooms:         len(h.rooms),
		TotalMessagesSent:   h.totalMessagesSent.Load(),
		TotalMessagesFailed: h.totalMessagesFailed.Load(),
	}
}

// getTotalConnectionsLocked returns total connections (must be called with lock held)
func (h *Hub) getTotalConnectionsLocked() int {
	total := 0
	for _, connections := range h.rooms {
		total += len(connections)
	}
	return total
}

// Shutdown gracefully shuts down the hub
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HubStats represents hub statistics
type HubStats struct {
	ActiveConnections   int   `json:"active_connections"`
	ActiveRooms         int   `json:"active_rooms"`
	TotalMessagesSent   int64 `json:"total_messages_sent"`
	TotalMessagesFailed int64 `json:"total_messages_failed"`
}
