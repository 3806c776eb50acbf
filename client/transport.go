package client

import (
	"context"
	"net/http"
)

// WireRequest is the transport-level form of a [Descriptor]: the query is
// already encoded into Path and the client headers are attached.
type WireRequest struct {
	Method    string
	Scheme    string
	Authority string
	Path      string // includes "?query" when present
	Header    http.Header
}

// URL returns the absolute request URL. Authority and path are joined
// as-is; they are not validated here.
func (r WireRequest) URL() string {
	return r.Scheme + "://" + r.Authority + r.Path
}

// WireResponse carries the status and headers returned by a [Transport].
type WireResponse struct {
	StatusCode int
	Header     http.Header
}

// Transport performs the network I/O for a [Client]. Implementations
// must be safe for concurrent use and own their timeouts.
//
// An error that already is an *[Error] is passed through to the caller
// unchanged. Any other error is reported as a network failure.
type Transport interface {
	Send(ctx context.Context, req WireRequest, body []byte) ([]byte, WireResponse, error)
}

// TransportFunc adapts an ordinary function to the [Transport] interface.
type TransportFunc func(ctx context.Context, req WireRequest, body []byte) ([]byte, WireResponse, error)

// Send calls f(ctx, req, body).
func (f TransportFunc) Send(ctx context.Context, req WireRequest, body []byte) ([]byte, WireResponse, error) {
	return f(ctx, req, body)
}
