// Package client implements the typed request pipeline for the Yahoo
// Finance API.
//
// # Building a Client
//
// A [Client] wraps a [Transport], the component that performs the network
// I/O. Use [Build] with functional options:
//
//	tr, err := nethttp.New(nethttp.WithTimeout(5 * time.Second))
//	if err != nil {
//		return err
//	}
//
//	c, err := client.Build(tr,
//		client.WithUserAgent(client.Chrome),
//		client.WithLogger(logger),
//	)
//
// Without [WithUserAgent] the client picks one identity from the built-in
// catalog at random and keeps it for its whole lifetime.
//
// # Describing Requests
//
// A [Descriptor] names the endpoint and the shape its 200 body decodes
// into:
//
//	type chart struct {
//		Symbol string `json:"symbol" validate:"required"`
//	}
//
//	d, err := client.NewDescriptor[chart]("query2.finance.yahoo.com", "/v8/finance/chart/AAPL",
//		client.WithQuery(query.Query{query.Param("interval", "1d")}),
//	)
//
// # Performing Requests
//
// [Perform] sends the descriptor and returns the decoded value:
//
//	resp, err := client.Perform(ctx, c, d)
//	switch {
//	case errors.Is(err, client.ErrAuthenticationFailed):
//	case errors.Is(err, client.ErrInvalidResponse):
//	}
//
// Every failure is an *[Error] of exactly one [Kind]. Decoded structs are
// checked against their `validate` tags, so a missing required field is
// reported as a decoding failure.
//
// For the net/http transport see
// [github.com/adamwoolhether/yahoofinance/client/nethttp]; for an in-memory
// transport suited to tests see
// [github.com/adamwoolhether/yahoofinance/client/clienttest].
package client
