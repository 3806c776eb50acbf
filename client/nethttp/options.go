package nethttp

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring a [Transport] via [New].
type Option func(*options) error
type options struct {
	client            *http.Client
	rt                http.RoundTripper
	jar               http.CookieJar
	timeout           *time.Duration
	maxResponseSize   int64
	noFollowRedirects bool
	logger            *slog.Logger
}

// WithClient replaces the [http.Client] used by the [Transport]. The
// client is copied; later changes to hc are not observed.
func WithClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithRoundTripper sets a custom [http.RoundTripper] as the base transport.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("round tripper must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithCookieJar replaces the default public-suffix aware cookie jar.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *options) error {
		if jar == nil {
			return errors.New("cookie jar must not be nil")
		}
		c.jar = jar
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithMaxResponseSize caps the number of body bytes read per response.
func WithMaxResponseSize(n int64) Option {
	return func(c *options) error {
		if n <= 0 {
			return errors.New("max response size must be greater than zero")
		}
		c.maxResponseSize = n
		return nil
	}
}

// WithNoFollowRedirects prevents the [Transport] from following HTTP redirects.
func WithNoFollowRedirects() Option {
	return func(c *options) error {
		c.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Transport].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger
		return nil
	}
}
