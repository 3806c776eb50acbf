package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/adamwoolhether/yahoofinance"
	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/nethttp"
)

// ClientFunc returns the client a command sends its requests through.
type ClientFunc func() (*client.Client, error)

// NewClient builds a client from the "user-agent", "timeout" and "verbose"
// settings.
func NewClient() (*client.Client, error) {
	logger := newLogger(viper.GetBool("verbose"))

	var opts []client.Option
	ua, err := parseUserAgent(viper.GetString("user-agent"))
	if err != nil {
		return nil, err
	}
	if ua != "" {
		opts = append(opts, client.WithUserAgent(ua))
	}
	opts = append(opts, client.WithLogger(logger))

	transportOpts := []nethttp.Option{nethttp.WithLogger(logger)}
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		transportOpts = append(transportOpts, nethttp.WithTimeout(timeout))
	}

	c, err := yahoofinance.NewClient(transportOpts, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseUserAgent maps a catalog name to its identity. An empty result
// means the client picks one at random.
func parseUserAgent(name string) (client.UserAgent, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "random":
		return "", nil
	case "safari":
		return client.Safari, nil
	case "chrome":
		return client.Chrome, nil
	case "mobile":
		return client.Mobile, nil
	}

	if !strings.Contains(name, "/") {
		return "", fmt.Errorf("unknown user agent %q", name)
	}

	return client.UserAgent(name), nil
}
