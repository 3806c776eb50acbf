// Package clienttest provides an in-memory [client.Transport] for tests.
//
// A [Transport] records every request it receives and answers from a queue
// of canned responses, or from a handler func:
//
//	tr := clienttest.New(clienttest.JSON(http.StatusOK, map[string]string{"symbol": "AAPL"}))
//	c, _ := client.Build(tr)
//	// ... perform requests ...
//	call, _ := tr.LastCall()
//	fmt.Println(call.Request.Path)
package clienttest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/adamwoolhether/yahoofinance/client"
)

// ErrNoResponse is returned by Send when the response queue is empty.
var ErrNoResponse = errors.New("clienttest: no response queued")

// Response is one canned answer. A non-nil Err is returned as the
// transport failure instead of a response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Err        error
}

// JSON returns a Response with v marshalled as the body. It panics if v
// cannot be marshalled.
func JSON(statusCode int, v any) Response {
	b, err := json.Marshal(v)
	if err != nil {
		panic("clienttest: marshalling response: " + err.Error())
	}

	return Response{
		StatusCode: statusCode,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       b,
	}
}

// Raw returns a Response with the given body bytes.
func Raw(statusCode int, body string) Response {
	return Response{StatusCode: statusCode, Body: []byte(body)}
}

// Failure returns a Response that makes Send fail with err.
func Failure(err error) Response {
	return Response{Err: err}
}

// Call is a recorded request.
type Call struct {
	Request client.WireRequest
	Body    []byte
}

// Transport is a concurrency-safe recording transport.
type Transport struct {
	mu        sync.Mutex
	responses []Response
	handler   client.TransportFunc
	calls     []Call
}

var _ client.Transport = (*Transport)(nil)

// New returns a Transport answering with responses in order.
func New(responses ...Response) *Transport {
	return &Transport{responses: responses}
}

// NewFunc returns a Transport answering every call with fn.
func NewFunc(fn client.TransportFunc) *Transport {
	return &Transport{handler: fn}
}

// Enqueue appends responses to the queue.
func (t *Transport) Enqueue(responses ...Response) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.responses = append(t.responses, responses...)
}

// Send records the call and returns the next queued response.
func (t *Transport) Send(ctx context.Context, req client.WireRequest, body []byte) ([]byte, client.WireResponse, error) {
	t.mu.Lock()
	t.calls = append(t.calls, Call{
		Request: client.WireRequest{
			Method:    req.Method,
			Scheme:    req.Scheme,
			Authority: req.Authority,
			Path:      req.Path,
			Header:    req.Header.Clone(),
		},
		Body: bytes.Clone(body),
	})
	handler := t.handler

	var next Response
	var ok bool
	if handler == nil && len(t.responses) > 0 {
		next, t.responses, ok = t.responses[0], t.responses[1:], true
	}
	t.mu.Unlock()

	if handler != nil {
		return handler(ctx, req, body)
	}

	if !ok {
		return nil, client.WireResponse{}, ErrNoResponse
	}

	if next.Err != nil {
		return nil, client.WireResponse{}, next.Err
	}

	return bytes.Clone(next.Body), client.WireResponse{StatusCode: next.StatusCode, Header: next.Header.Clone()}, nil
}

// Calls returns the recorded calls in arrival order.
func (t *Transport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Call, len(t.calls))
	copy(out, t.calls)

	return out
}

// LastCall returns the most recent call, or false if there was none.
func (t *Transport) LastCall() (Call, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.calls) == 0 {
		return Call{}, false
	}

	return t.calls[len(t.calls)-1], true
}
