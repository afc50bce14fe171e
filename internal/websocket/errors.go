package websocket

import "github.com/friendsofgo/errors"

var (
	ErrInvalidMessage = errors.New("websocket: invalid message")
	ErrInvalidRoom    = errors.New("websocket: invalid room name")
)
