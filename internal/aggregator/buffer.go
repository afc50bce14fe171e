package aggregator

import "sync"

// Buffer accumulates raw messages per channel between aggregation ticks.
//
// Append never blocks ingestion beyond a short critical section, and
// drains are atomic with respect to concurrent appends: a message lands
// either in the batch being drained or in the next one, never both and
// never nowhere.
type Buffer struct {
	mu      sync.Mutex
	pending map[string][]string
}

func NewBuffer() *Buffer {
	return &Buffer{pending: make(map[string][]string)}
}

// Append adds one message to the channel's pending batch.
func (b *Buffer) Append(key, message string) {
	b.mu.Lock()
	b.pending[key] = append(b.pending[key], message)
	b.mu.Unlock()
}

// Drain atomically takes and clears the channel's pending batch.
func (b *Buffer) Drain(key string) []string {
	b.mu.Lock()
	msgs := b.pending[key]
	delete(b.pending, key)
	b.mu.Unlock()
	return msgs
}

// DrainAll atomically takes and clears every pending batch by swapping
// the whole map. This is the tick's cut-point: appends racing with it go
// to the fresh map and are counted next tick.
func (b *Buffer) DrainAll() map[string][]string {
	fresh := make(map[string][]string)
	b.mu.Lock()
	drained := b.pending
	b.pending = fresh
	b.mu.Unlock()
	return drained
}

// Len returns the number of pending messages for a channel.
func (b *Buffer) Len(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending[key])
}
