package secspy

import (
	"errors"
	"fmt"
)

// ErrStreamClosed reports an orderly end of the event stream, either
// because the server finished the response or because Close was called.
var ErrStreamClosed = errors.New("secspy: event stream closed")

// ConnectionError wraps a transport-level failure talking to the server.
type ConnectionError struct {
	Op  string
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	if e == nil {
		return "connection error"
	}
	return fmt.Sprintf("secspy: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CredentialsError means the server rejected the auth token (HTTP 401/403).
type CredentialsError struct {
	StatusCode int
}

func (e *CredentialsError) Error() string {
	if e == nil {
		return "invalid credentials"
	}
	return fmt.Sprintf("secspy: invalid credentials (status %d)", e.StatusCode)
}

// RequestError means the server answered with a non-2xx status other
// than an authentication failure.
type RequestError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e == nil {
		return "request error"
	}
	return fmt.Sprintf("secspy: request failed: %s", e.Status)
}

// ParseError means a payload could not be decoded into the expected record.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "parse error"
	}
	return fmt.Sprintf("secspy: unparseable response from %s: %v", e.Endpoint, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError means the server does not know the requested resource.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "not found"
	}
	return fmt.Sprintf("secspy: %s not found", e.Resource)
}
