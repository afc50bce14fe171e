package websocket

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"moodmeter-srv/internal/channel"
	"moodmeter-srv/internal/sentiment"
	"moodmeter-srv/pkg/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for now (configure in production)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Voter records manual calibration votes from panel clients.
type Voter interface {
	Vote(ctx context.Context, ch string, vote sentiment.Vote) error
}

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	logger   log.Logger
	wsConfig WSConfig
	voter    Voter
}

// WSConfig holds WebSocket configuration
type WSConfig struct {
	PongWait       time.Duration
	PingPeriod     time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, logger log.Logger, wsConfig WSConfig, voter Voter) *Handler {
	return &Handler{
		hub:      hub,
		logger:   logger,
		wsConfig: wsConfig,
		voter:    voter,
	}
}

// HandleWebSocket handles WebSocket connection requests.
// Clients join a channel's general room with ?channel=<name>, or its
// panel room with ?channel=<name>&panel=true.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	raw := c.Query("channel")
	if raw == "" {
		h.logger.Warn(context.Background(), "WebSocket connection rejected: missing channel")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "missing channel parameter",
		})
		return
	}

	key := channel.Canonical(raw)
	if err := ValidateChannelKey(key); err != nil {
		h.logger.Warnf(context.Background(), "WebSocket connection rejected: invalid channel %q", raw)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid channel parameter",
		})
		return
	}

	panel := c.Query("panel") == "true"
	room := key
	if panel {
		room = PanelRoom(key)
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf(context.Background(), "Failed to upgrade connection: %v", err)
		return
	}

	connection := NewConnection(h.hub, conn, room, panel, h.wsConfig, h.handleClientMessage, h.logger)
	h.hub.register <- connection
	connection.Start()

	h.logger.Infof(context.Background(), "WebSocket connection established for room: %s", room)
}

// handleClientMessage processes one inbound frame. Only calibrate votes
// from panel connections are acted on; everything else is dropped.
func (h *Handler) handleClientMessage(ctx context.Context, conn *Connection, data []byte) {
	msg, err := ParseClientMessage(data)
	if err != nil {
		h.logger.Debugf(ctx, "Dropping malformed client message in room %s: %v", conn.room, err)
		return
	}

	switch msg.Event {
	case "calibrate":
		if !conn.panel {
			h.logger.Warnf(ctx, "Ignoring calibrate vote from non-panel room %s", conn.room)
			return
		}
		var payload CalibratePayload
		if err := parsePayload(msg.Payload, &payload); err != nil {
			h.logger.Debugf(ctx, "Dropping malformed calibrate payload in room %s: %v", conn.room, err)
			return
		}
		key := conn.room[len(panelPrefix):]
		if err := h.voter.Vote(ctx, key, sentiment.Vote(payload.Vote)); err != nil {
			h.logger.Warnf(ctx, "Calibrate vote for %s failed: %v", key, err)
		}
	default:
		h.logger.Debugf(ctx, "Ignoring unknown client event %q in room %s", msg.Event, conn.room)
	}
}

// SetupRoutes sets up WebSocket routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/ws", h.HandleWebSocket)
}
