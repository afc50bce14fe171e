package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"moodmeter-srv/internal/model"
)

type mockLogger struct{}

func (mockLogger) Debug(context.Context, ...any) {}
func (mockLogger) Debugf(context.Context, string, ...any) {}
func (mockLogger) Info(context.Context, ...any) {}
func (mockLogger) Infof(context.Context, string, ...any) {}
func (mockLogger) Warn(context.Context, ...any) {}
func (mockLogger) Warnf(context.Context, string, ...any) {}
func (mockLogger) Error(context.Context, ...any) {}
func (mockLogger) Errorf(context.Context, string, ...any) {}
func (mockLogger) Fatal(context.Context, ...any) {}
func (mockLogger) Fatalf(context.Context, string, ...any) {}

func testConfig() WSConfig {
	return WSConfig{
		PongWait:       60 * time.Second,
		PingPeriod:     54 * time.Second,
		WriteWait:      10 * time.Second,
		MaxMessageSize: 512,
	}
}

// joinRoom registers a connection without starting its pumps, so tests
// can read h.send directly.
func joinRoom(t *testing.T, h *Hub, room string, panel bool) *Connection {
	t.Helper()
	conn := NewConnection(h, nil, room, panel, testConfig(), nil, mockLogger{})
	h.register <- conn
	waitFor(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		for _, c := range h.rooms[room] {
			if c == conn {
				return true
			}
		}
		return false
	})
	return conn
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("received frame is not a valid envelope: %v", err)
		}
		return &msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received in time")
		return nil
	}
}

func assertSilent(t *testing.T, conn *Connection) {
	t.Helper()
	select {
	case data := <-conn.send:
		t.Fatalf("unexpected message: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRoomFanout(t *testing.T) {
	h := NewHub(mockLogger{}, 100)
	go h.Run()

	general := joinRoom(t, h, "chan", false)
	panel := joinRoom(t, h, PanelRoom("chan"), true)
	other := joinRoom(t, h, "other", false)

	update := model.SentimentUpdate{Channel: "chan", Score: 0.4, Ts: 123}
	h.ToChannel("chan", model.EventSentimentUpdate, update)
	h.ToPanel("chan", model.EventSentimentUpdate, update)

	for _, conn := range []*Connection{general, panel} {
		msg := recvMessage(t, conn)
		if msg.Event != model.EventSentimentUpdate {
			t.Errorf("event = %q, want %q", msg.Event, model.EventSentimentUpdate)
		}
		var got model.SentimentUpdate
		if err := json.Unmarshal(msg.Payload, &got); err != nil {
			t.Fatalf("payload does not decode: %v", err)
		}
		if got != update {
			t.Errorf("payload = %+v, want %+v", got, update)
		}
	}
	assertSilent(t, other)

	h.unregister <- general
	h.unregister <- panel
	h.unregister <- other
	waitFor(t, func() bool { return h.GetStats().ActiveConnections == 0 })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := h.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestHubPanelIsolation(t *testing.T) {
	h := NewHub(mockLogger{}, 100)
	go h.Run()

	general := joinRoom(t, h, "chan", false)
	panel := joinRoom(t, h, PanelRoom("chan"), true)

	h.ToPanel("chan", model.EventAlertTriggered, model.AlertEvent{Channel: "chan", Score: -0.7})

	msg := recvMessage(t, panel)
	if msg.Event != model.EventAlertTriggered {
		t.Errorf("panel got event %q, want %q", msg.Event, model.EventAlertTriggered)
	}
	assertSilent(t, general)

	h.unregister <- general
	h.unregister <- panel
	waitFor(t, func() bool { return h.GetStats().ActiveConnections == 0 })
}

func TestHubEmptyRoomIsSkipped(t *testing.T) {
	h := NewHub(mockLogger{}, 100)
	go h.Run()

	// Nobody listening: must not block or fail.
	h.ToChannel("ghost", model.EventSentimentUpdate, model.SentimentUpdate{Channel: "ghost"})

	waitFor(t, func() bool { return len(h.broadcast) == 0 })
	if s := h.GetStats(); s.TotalMessagesSent != 0 || s.TotalMessagesFailed != 0 {
		t.Errorf("stats = %+v, want all zero", s)
	}
}

func TestHubMaxConnections(t *testing.T) {
	h := NewHub(mockLogger{}, 1)
	go h.Run()

	joinRoom(t, h, "chan", false)
	overflow := NewConnection(h, nil, "chan", false, testConfig(), nil, mockLogger{})
	// Not joinRoom: the hub must refuse this one.
	h.register <- overflow

	waitFor(t, func() bool { return len(h.register) == 0 })
	if got := h.GetStats().ActiveConnections; got != 1 {
		t.Errorf("ActiveConnections = %d, want 1", got)
	}
}
