package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/adamwoolhether/yahoofinance/client/query"
)

// Method is an HTTP verb accepted by a [Descriptor].
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodHead    Method = http.MethodHead
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodPatch   Method = http.MethodPatch
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
	MethodConnect Method = http.MethodConnect
	MethodTrace   Method = http.MethodTrace
)

const defaultScheme = "https"

// Descriptor describes one logical API call whose 200 body decodes into T.
// It is immutable once built; use [NewDescriptor] to create one.
type Descriptor[T any] struct {
	method      Method
	scheme      string
	authority   string
	path        string
	query       query.Query
	body        []byte
	contentType string
}

// descriptorFields is the validated view of a Descriptor.
type descriptorFields struct {
	Method    string `json:"method" validate:"oneof=GET HEAD POST PUT PATCH DELETE OPTIONS CONNECT TRACE"`
	Scheme    string `json:"scheme" validate:"required"`
	Authority string `json:"authority" validate:"required"`
	Path      string `json:"path" validate:"required"`
}

// NewDescriptor builds a Descriptor for authority and path. Unless set by
// options, the method is GET, the scheme is https, the query is empty and
// there is no body. The path is passed through uninterpreted.
func NewDescriptor[T any](authority, path string, opts ...DescriptorOption) (Descriptor[T], error) {
	settings := descriptorOpts{
		method: MethodGet,
		scheme: defaultScheme,
	}
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return Descriptor[T]{}, fmt.Errorf("applying descriptor option: %w", err)
		}
	}

	fields := descriptorFields{
		Method:    string(settings.method),
		Scheme:    settings.scheme,
		Authority: authority,
		Path:      path,
	}
	if err := Validate(fields); err != nil {
		return Descriptor[T]{}, fmt.Errorf("validating descriptor: %w", err)
	}

	d := Descriptor[T]{
		method:      settings.method,
		scheme:      settings.scheme,
		authority:   authority,
		path:        path,
		query:       settings.query.Clone(),
		body:        settings.body,
		contentType: settings.contentType,
	}

	return d, nil
}

// Method returns the HTTP verb.
func (d Descriptor[T]) Method() Method { return d.method }

// Scheme returns the URL scheme.
func (d Descriptor[T]) Scheme() string { return d.scheme }

// Authority returns the host, optionally with a port.
func (d Descriptor[T]) Authority() string { return d.authority }

// Path returns the path without the query.
func (d Descriptor[T]) Path() string { return d.path }

// Query returns a copy of the query parameters.
func (d Descriptor[T]) Query() query.Query { return d.query.Clone() }

// Body returns a copy of the request body, or nil when there is none.
func (d Descriptor[T]) Body() []byte { return slices.Clone(d.body) }

// ContentType returns the body's media type, if any.
func (d Descriptor[T]) ContentType() string { return d.contentType }

// PathWithQuery returns the path followed by "?" and the encoded query
// when the query is not empty.
func (d Descriptor[T]) PathWithQuery() string {
	if q, ok := d.query.Encode(); ok {
		return d.path + "?" + q
	}

	return d.path
}

// String returns the absolute URL, for logging.
func (d Descriptor[T]) String() string {
	return d.scheme + "://" + d.authority + d.PathWithQuery()
}

// wireRequest composes the transport request with ua as the identity.
func (d Descriptor[T]) wireRequest(ua UserAgent) WireRequest {
	header := make(http.Header)
	header.Set("User-Agent", string(ua))
	if d.body != nil && d.contentType != "" {
		header.Set("Content-Type", d.contentType)
	}

	return WireRequest{
		Method:    string(d.method),
		Scheme:    d.scheme,
		Authority: d.authority,
		Path:      d.PathWithQuery(),
		Header:    header,
	}
}

// DescriptorOption is a functional option for [NewDescriptor].
type DescriptorOption func(*descriptorOpts) error

type descriptorOpts struct {
	method      Method
	scheme      string
	query       query.Query
	body        []byte
	contentType string
}

// WithMethod overrides the default GET verb.
func WithMethod(method Method) DescriptorOption {
	return func(opts *descriptorOpts) error {
		opts.method = method

		return nil
	}
}

// WithScheme overrides the default "https" scheme.
func WithScheme(scheme string) DescriptorOption {
	return func(opts *descriptorOpts) error {
		opts.scheme = scheme

		return nil
	}
}

// WithQuery sets the query parameters. The query is copied.
func WithQuery(q query.Query) DescriptorOption {
	return func(opts *descriptorOpts) error {
		opts.query = q.Clone()

		return nil
	}
}

// WithBody sets the raw request body. The bytes are copied.
func WithBody(body []byte) DescriptorOption {
	return func(opts *descriptorOpts) error {
		opts.body = bytes.Clone(body)

		return nil
	}
}

// WithPayload JSON-encodes body as the request body and sets the
// Content-Type to "application/json".
func WithPayload(body any) DescriptorOption {
	return func(opts *descriptorOpts) error {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request payload: %w", err)
		}

		opts.body = data
		if opts.contentType == "" {
			opts.contentType = "application/json"
		}

		return nil
	}
}

// WithContentType sets the Content-Type sent with the body.
func WithContentType(contentType string) DescriptorOption {
	return func(opts *descriptorOpts) error {
		if contentType == "" {
			return errors.New("cannot use empty content type")
		}

		opts.contentType = contentType

		return nil
	}
}
