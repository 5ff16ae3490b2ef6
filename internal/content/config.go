package content

import "time"

// Config controls generation behavior.
type Config struct {
	// MaxTokens is the token budget for one generation response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64

	// Timeout bounds one content operation end to end, including the
	// provider's internal retries.
	Timeout time.Duration
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}
