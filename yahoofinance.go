// Package yahoofinance exposes typed requests for the unofficial Yahoo
// Finance API, and a client builder backed by net/http.
package yahoofinance

import (
	"fmt"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/nethttp"
)

// Hosts serving the finance API.
const (
	Query1 = "query1.finance.yahoo.com"
	Query2 = "query2.finance.yahoo.com"
)

// NewClient instantiates a new *client.Client over a net/http transport
// configured with transportOpts.
func NewClient(transportOpts []nethttp.Option, opts ...client.Option) (*client.Client, error) {
	tr, err := nethttp.New(transportOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating transport: %w", err)
	}

	return client.Build(tr, opts...)
}

// APIError is the error object Yahoo embeds in some response envelopes.
type APIError struct {
	Code        string `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Description
}
