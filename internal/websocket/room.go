package websocket

import "regexp"

// Room name validation constants
const (
	MinRoomLength = 1
	MaxRoomLength = 64

	panelPrefix = "panel:"
)

// roomPattern matches canonical channel keys: lowercase alphanumeric,
// underscore, hyphen, dot, and percent-escapes.
var roomPattern = regexp.MustCompile(`^[a-z0-9_%.-]+$`)

// PanelRoom is the room name for a channel's panel-only audience.
func PanelRoom(key string) string {
	return panelPrefix + key
}

// ValidateChannelKey checks a canonical channel key against format and
// length constraints before it is used as a room name.
func ValidateChannelKey(key string) error {
	if len(key) < MinRoomLength || len(key) > MaxRoomLength {
		return ErrInvalidRoom
	}
	if !roomPattern.MatchString(key) {
		return ErrInvalidRoom
	}
	return nil
}
