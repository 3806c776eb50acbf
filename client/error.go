package client

import (
	"errors"
	"fmt"
)

// Kind classifies a failed [Perform] call.
type Kind int

const (
	// KindAuthenticationFailed means the server answered 401 Unauthorized.
	KindAuthenticationFailed Kind = iota + 1
	// KindInvalidResponse means the server answered with a status other than 200 or 401.
	KindInvalidResponse
	// KindNetwork means the transport failed before a status was obtained.
	KindNetwork
	// KindDecoding means a 200 body could not be decoded into the expected shape.
	KindDecoding
)

var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrInvalidResponse      = errors.New("invalid response")
	ErrNetwork              = errors.New("network error")
	ErrDecoding             = errors.New("decoding error")
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAuthenticationFailed:
		return "authentication_failed"
	case KindInvalidResponse:
		return "invalid_response"
	case KindNetwork:
		return "network"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAuthenticationFailed:
		return ErrAuthenticationFailed
	case KindInvalidResponse:
		return ErrInvalidResponse
	case KindNetwork:
		return ErrNetwork
	case KindDecoding:
		return ErrDecoding
	default:
		return nil
	}
}

// Error is the only error type returned by [Perform]. Match the kind with
// errors.Is against the Err* sentinels, and reach the cause through
// errors.Unwrap or errors.As.
type Error struct {
	Kind Kind
	// StatusCode is the observed HTTP status, zero for network failures.
	StatusCode int
	// Err is the underlying cause of network and decoding failures.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthenticationFailed:
		return ErrAuthenticationFailed.Error()
	case KindInvalidResponse:
		return fmt.Sprintf("%v: status %d", ErrInvalidResponse, e.StatusCode)
	case KindNetwork, KindDecoding:
		return fmt.Sprintf("%v: %v", e.Kind.sentinel(), e.Err)
	default:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewAuthenticationError returns a 401 failure.
func NewAuthenticationError() *Error {
	return &Error{Kind: KindAuthenticationFailed, StatusCode: 401}
}

// NewInvalidResponseError returns a failure for an unexpected status.
func NewInvalidResponseError(statusCode int) *Error {
	return &Error{Kind: KindInvalidResponse, StatusCode: statusCode}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// NewDecodingError wraps a body decoding failure.
func NewDecodingError(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// AsError retrieves the *Error from err's chain, or returns false if err
// was not produced by this package.
func AsError(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return nil, false
	}

	return e, true
}
