package client

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error
type options struct {
	userAgent  UserAgent
	useJSONNum bool
	logger     *slog.Logger
	tracer     trace.Tracer
}

// WithUserAgent fixes the client's identity. Without it, [Build] picks one
// entry from the catalog at random.
func WithUserAgent(ua UserAgent) Option {
	return func(c *options) error {
		if ua == "" {
			return errors.New("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithJSONNumber tells the JSON decoder to use [json.Decoder.UseNumber],
// preserving number precision as [json.Number] instead of float64.
func WithJSONNumber() Option {
	return func(c *options) error {
		c.useJSONNum = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}

// WithTracer records a span per [Perform] call on tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}
