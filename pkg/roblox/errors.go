package roblox

import "fmt"

// TransportError reports a connection-level failure: the request never
// produced an HTTP status line.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("roblox transport error for %s: %v", e.URL, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-success HTTP status from the Roblox API.
// Body carries the raw response body for diagnostics.
type RemoteError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("roblox API error (status %d): %s", e.StatusCode, e.Body)
}

// ParseError reports a response body that is not valid JSON.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("roblox response parse error: %v", e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
