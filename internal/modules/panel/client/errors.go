package client

import (
	"errors"
	"fmt"
)

// TransportError is a network failure or a non-success HTTP status.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather endpoint returned status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather endpoint unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the response body was not a usable weather payload.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse weather response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ReportedError is a failure the server put in the payload's error field.
type ReportedError struct {
	Message string
}

func (e *ReportedError) Error() string {
	return "weather endpoint reported: " + e.Message
}

// Kind names the error class for logging: transport, parse, reported or unknown.
func Kind(err error) string {
	var transportErr *TransportError
	var parseErr *ParseError
	var reportedErr *ReportedError
	switch {
	case errors.As(err, &transportErr):
		return "transport"
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &reportedErr):
		return "reported"
	default:
		return "unknown"
	}
}
