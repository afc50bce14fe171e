package redis

import "time"

const (
	// DefaultConnectTimeout bounds the initial connection probe.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultOpTimeout bounds individual commands issued by the wrapper.
	DefaultOpTimeout = 3 * time.Second
)
