package nethttp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"slices"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/adamwoolhether/yahoofinance/client"
)

const (
	defaultTimeout         = 10 * time.Second
	defaultMaxResponseSize = 16 << 20 // 16MB
)

// ErrResponseTooLarge is returned when a body exceeds the configured limit.
var ErrResponseTooLarge = errors.New("response body too large")

// Transport sends [client.WireRequest] values with an [http.Client].
type Transport struct {
	c       *http.Client
	maxSize int64
	logger  *slog.Logger
}

var _ client.Transport = (*Transport)(nil)

// New returns a Transport with a 10s timeout, a 16MB response cap and a
// fresh cookie jar, each of which can be overridden with options.
func New(optFns ...Option) (*Transport, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying transport option: %w", err)
		}
	}

	hc := &http.Client{Timeout: defaultTimeout}
	if opts.client != nil {
		cpy := *opts.client
		hc = &cpy
	}

	t := &Transport{
		c:       hc,
		maxSize: defaultMaxResponseSize,
		logger:  slog.Default(),
	}

	if opts.logger != nil {
		t.logger = opts.logger
	}

	if opts.maxResponseSize > 0 {
		t.maxSize = opts.maxResponseSize
	}

	if opts.timeout != nil {
		hc.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	switch {
	case opts.rt != nil:
		hc.Transport = opts.rt
	case hc.Transport == nil:
		hc.Transport = http.DefaultTransport
	}

	switch {
	case opts.jar != nil:
		hc.Jar = opts.jar
	case hc.Jar == nil:
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("creating cookie jar: %w", err)
		}
		hc.Jar = jar
	}

	return t, nil
}

// Send executes req with body and returns the full response body. Non-2xx
// statuses are not errors here; classifying them is up to the caller.
func (t *Transport) Send(ctx context.Context, req client.WireRequest, body []byte) ([]byte, client.WireResponse, error) {
	var payload io.Reader
	if body != nil {
		payload = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), payload)
	if err != nil {
		return nil, client.WireResponse{}, fmt.Errorf("instantiating request: %w", err)
	}

	for k, v := range req.Header {
		httpReq.Header[k] = slices.Clone(v)
	}

	resp, err := t.c.Do(httpReq)
	if err != nil {
		return nil, client.WireResponse{}, fmt.Errorf("exec http do: %w", err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			t.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			t.logger.Error("failed to close response body", "error", err)
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, t.maxSize+1))
	if err != nil {
		return nil, client.WireResponse{}, fmt.Errorf("reading body: %w", err)
	}

	if int64(len(b)) > t.maxSize {
		return nil, client.WireResponse{}, fmt.Errorf("%w: limit %d bytes", ErrResponseTooLarge, t.maxSize)
	}

	wire := client.WireResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}

	return b, wire, nil
}
