package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNavigation represents upstream fetch/navigation failures (login
	// required, access denied, page not loaded). Fatal for that day's scrape.
	ErrorTypeNavigation ErrorType = "navigation"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeTranslation represents label translation misses
	ErrorTypeTranslation ErrorType = "translation"
	// ErrorTypeRateLimit represents rate limiting by the portal
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeStore represents database errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scrape-pipeline error for one game/day
type ScrapeError struct {
	Type    ErrorType
	Game    string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Game, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Game, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsRetryable returns true if the error is retryable
func (e *ScrapeError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeStore, ErrorTypePublisher:
		return true
	case ErrorTypeNavigation, ErrorTypeRateLimit:
		return false
	case ErrorTypeParsing, ErrorTypeTranslation:
		return false
	default:
		return false
	}
}

// IsFatalForDay reports whether the error aborts the whole day's scrape.
// Parsing and translation problems degrade the record instead.
func (e *ScrapeError) IsFatalForDay() bool {
	return e.Type == ErrorTypeNavigation
}

// New creates a new ScrapeError
func New(errType ErrorType, game, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Game:    game,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewNavigation creates a new navigation error
func NewNavigation(game, message string, err error) *ScrapeError {
	return New(ErrorTypeNavigation, game, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(game, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, game, message, err)
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(game string, duration time.Duration) *ScrapeError {
	message := fmt.Sprintf("rate limited for %v", duration)
	return New(ErrorTypeRateLimit, game, message, nil)
}

// NewStore creates a new store error
func NewStore(game, message string, err error) *ScrapeError {
	return New(ErrorTypeStore, game, message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(game, message string, err error) *ScrapeError {
	return New(ErrorTypePublisher, game, message, err)
}

// NewValidation creates a new validation error
func NewValidation(game, message string) *ScrapeError {
	return New(ErrorTypeValidation, game, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
