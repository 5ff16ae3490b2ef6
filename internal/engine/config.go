package engine

import "time"

// Config tunes message delivery and dispatch.
type Config struct {
	// ChunkSize is the maximum characters per outbound message before
	// a long response is split into sequential chunks.
	ChunkSize int

	// ChunkDelay is the pause between sending chunks of one response,
	// so the platform renders them in order.
	ChunkDelay time.Duration

	// QueueSize is the per-user input queue depth in the dispatcher.
	QueueSize int
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:  2000,
		ChunkDelay: 300 * time.Millisecond,
		QueueSize:  16,
	}
}
