package websocket

import (
	"encoding/json"
	"time"
)

// Message is the envelope for everything pushed to clients. Event carries
// the domain event name (sentiment:update, alert:triggered,
// calibration:update).
type Message struct {
	Event     string          `json:"event"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// BroadcastMessage targets one room.
type BroadcastMessage struct {
	Room    string
	Message *Message
}

// ClientMessage is the envelope for messages received from clients.
type ClientMessage struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// CalibratePayload is the payload of an inbound calibrate message.
type CalibratePayload struct {
	Vote string `json:"vote"`
}

// NewMessage wraps an event payload in the outbound envelope.
func NewMessage(event string, payload any) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Message{
		Event:     event,
		Payload:   payloadBytes,
		Timestamp: time.Now(),
	}, nil
}

// ToJSON converts the message to JSON bytes
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func parsePayload(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return ErrInvalidMessage
	}
	return json.Unmarshal(raw, v)
}

// ParseClientMessage parses and validates an inbound frame.
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, ErrInvalidMessage
	}
	if msg.Event == "" {
		return nil, ErrInvalidMessage
	}
	return &msg, nil
}
