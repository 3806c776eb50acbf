package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Client turns Descriptors into wire requests, sends them through a
// Transport and decodes the results. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	transport  Transport
	userAgent  UserAgent
	useJSONNum bool
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Build returns a Client sending requests through transport. The
// identity is fixed here, for the lifetime of the Client.
func Build(transport Transport, optFns ...Option) (*Client, error) {
	if transport == nil {
		return nil, errors.New("transport must not be nil")
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	client := &Client{
		transport:  transport,
		userAgent:  RandomUserAgent(),
		useJSONNum: opts.useJSONNum,
		logger:     slog.Default(),
		tracer:     noop.NewTracerProvider().Tracer("no-op tracer"),
	}

	if opts.userAgent != "" {
		client.userAgent = opts.userAgent
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.tracer != nil {
		client.tracer = opts.tracer
	}

	return client, nil
}

// UserAgent returns the identity sent with every request.
func (c *Client) UserAgent() UserAgent {
	return c.userAgent
}

// Perform executes d and decodes a 200 body into T. Every failure is an
// *Error: 401 is reported as authentication failure, any other non-200
// status as an invalid response, transport failures as network errors and
// decode or validation failures as decoding errors. If ctx ends while the
// transport is in flight, the body is not decoded and the returned
// network error wraps ctx.Err().
func Perform[T any](ctx context.Context, c *Client, d Descriptor[T]) (T, error) {
	var out T

	decode := func(body []byte) error {
		if err := c.unmarshal(body, &out); err != nil {
			return err
		}

		if v := reflect.ValueOf(out); v.Kind() == reflect.Pointer && v.IsNil() {
			return errors.New("decoding body: null value")
		}

		return Validate(out)
	}

	// TODO: attach the crumb token to the wire request once the cookie/crumb handshake exists.
	req := d.wireRequest(c.userAgent)

	if err := c.do(ctx, req, d.body, decode); err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// do wraps exec with a span and the request log records.
func (c *Client) do(ctx context.Context, req WireRequest, body []byte, decode func([]byte) error) error {
	ctx, span := c.tracer.Start(ctx, "yahoofinance.perform", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.String("server.address", req.Authority),
		attribute.String("url.path", req.Path),
	)

	requestID := span.SpanContext().TraceID().String()
	if !span.SpanContext().TraceID().IsValid() {
		requestID = uuid.New().String()
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	statusCode, err := c.exec(ctx, req, body, decode)
	if statusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Warn("request failed", "request_id", requestID, "method", req.Method, "authority", req.Authority, "path", req.Path, "statusCode", statusCode, "since", time.Since(start).String(), "error", err)
		return err
	}

	c.logger.Debug("request completed", "request_id", requestID, "method", req.Method, "authority", req.Authority, "path", req.Path, "statusCode", statusCode, "since", time.Since(start).String())

	return nil
}

// exec sends the request, classifies the status and decodes on 200.
func (c *Client) exec(ctx context.Context, req WireRequest, body []byte, decode func([]byte) error) (int, error) {
	respBody, resp, err := c.transport.Send(ctx, req, body)
	if err != nil {
		if e, ok := AsError(err); ok {
			return e.StatusCode, e
		}
		return 0, NewNetworkError(err)
	}

	if err := ctx.Err(); err != nil {
		return resp.StatusCode, NewNetworkError(err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return resp.StatusCode, NewAuthenticationError()
	case resp.StatusCode != http.StatusOK:
		return resp.StatusCode, NewInvalidResponseError(resp.StatusCode)
	}

	if err := decode(respBody); err != nil {
		return resp.StatusCode, NewDecodingError(err)
	}

	return resp.StatusCode, nil
}

func (c *Client) unmarshal(body []byte, dest any) error {
	d := json.NewDecoder(bytes.NewReader(body))

	if c.useJSONNum {
		d.UseNumber()
	}

	if err := d.Decode(dest); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}

	if _, err := d.Token(); !errors.Is(err, io.EOF) {
		return errors.New("decoding body: unexpected data after JSON value")
	}

	return nil
}
