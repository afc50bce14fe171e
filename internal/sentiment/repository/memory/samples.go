// Package memory holds the sample message buckets in process memory.
// Samples are debugging aids scoped to the 30-minute live window, so
// process-local retention is enough; the score series itself lives in
// Redis.
package memory

import (
	"sync"

	"moodmeter-srv/internal/sentiment/repository"
)

const (
	// MaxPerBucket caps how many raw messages one bucket retains.
	MaxPerBucket = 20
	// LookupLimit caps how many samples a lookup returns.
	LookupLimit = 5
)

type sampleRepo struct {
	mu      sync.RWMutex
	buckets map[string]map[int64][]string
}

// NewSampleRepo returns an in-memory sample message store.
func NewSampleRepo() repository.SampleRepo {
	return &sampleRepo{buckets: make(map[string]map[int64][]string)}
}

func (r *sampleRepo) Record(key string, ts int64, messages []string) {
	if len(messages) == 0 {
		return
	}
	if len(messages) > MaxPerBucket {
		messages = messages[:MaxPerBucket]
	}
	// Copy so later buffer reuse cannot mutate the stored bucket.
	stored := make([]string, len(messages))
	copy(stored, messages)

	r.mu.Lock()
	defer r.mu.Unlock()
	channelBuckets, ok := r.buckets[key]
	if !ok {
		channelBuckets = make(map[int64][]string)
		r.buckets[key] = channelBuckets
	}
	channelBuckets[ts] = stored
}

func (r *sampleRepo) Lookup(key string, ts int64) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	channelBuckets, ok := r.buckets[key]
	if !ok {
		return []string{}
	}
	msgs, ok := channelBuckets[ts]
	if !ok {
		return []string{}
	}
	if len(msgs) > LookupLimit {
		msgs = msgs[:LookupLimit]
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

func (r *sampleRepo) Prune(key string, oldest int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	channelBuckets, ok := r.buckets[key]
	if !ok {
		return
	}
	for ts := range channelBuckets {
		if ts < oldest {
			delete(channelBuckets, ts)
		}
	}
	if len(channelBuckets) == 0 {
		delete(r.buckets, key)
	}
}
