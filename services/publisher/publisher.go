package publisher

// Publisher represents a service for publishing metric records downstream
type Publisher interface {
	// Publish publishes a message keyed by game to the game's stream
	Publish(gameKey string, message []byte) error

	// TrimStreams trims all streams to the configured maximum length
	TrimStreams() error

	// Close closes the publisher connection
	Close() error
}
