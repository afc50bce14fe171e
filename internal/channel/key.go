// Package channel normalizes chat channel identifiers.
//
// Every ingress boundary (IRC connector, HTTP handlers, WebSocket
// handshake) canonicalizes the raw identifier once, so all internal maps
// and Redis keys use exactly one key per channel. Numeric room IDs are an
// alias space on top of the canonical login key, resolved explicitly via
// AliasMap instead of duplicating storage under both keys.
package channel

import (
	"net/url"
	"strings"
	"sync"
)

// Canonical converts a raw channel identifier (e.g. "#SomeStreamer") into
// the canonical URL-safe key used by every store and room name.
func Canonical(raw string) string {
	key := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	key = strings.ToLower(key)
	return url.PathEscape(key)
}

// AliasMap maps alternate identifiers (numeric room IDs) to canonical keys.
// Safe for concurrent use.
type AliasMap struct {
	mu      sync.RWMutex
	aliases map[string]string
}

func NewAliasMap() *AliasMap {
	return &AliasMap{aliases: make(map[string]string)}
}

// Register records that alias refers to the channel with the given
// canonical key. Registering an empty alias is a no-op.
func (m *AliasMap) Register(alias, key string) {
	if alias == "" {
		return
	}
	m.mu.Lock()
	m.aliases[alias] = key
	m.mu.Unlock()
}

// Resolve returns the canonical key for an identifier: a known alias maps
// to its registered key, anything else is canonicalized directly.
func (m *AliasMap) Resolve(id string) string {
	m.mu.RLock()
	key, ok := m.aliases[id]
	m.mu.RUnlock()
	if ok {
		return key
	}
	return Canonical(id)
}
