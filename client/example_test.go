package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/clienttest"
	"github.com/adamwoolhether/yahoofinance/client/query"
)

func ExampleBuild() {
	c, err := client.Build(clienttest.New(), client.WithUserAgent(client.Chrome))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(c.UserAgent() == client.Chrome)
	// Output: true
}

func ExampleNewDescriptor() {
	d, err := client.NewDescriptor[map[string]any]("query1.finance.yahoo.com", "/v8/finance/chart/AAPL",
		client.WithQuery(query.Query{query.Param("interval", "1d"), query.Param("range", "1mo")}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(d.Method(), d.PathWithQuery())
	// Output: GET /v8/finance/chart/AAPL?interval=1d&range=1mo
}

func ExamplePerform() {
	type meta struct {
		Symbol string `json:"symbol" validate:"required"`
	}

	tr := clienttest.New(clienttest.Raw(http.StatusOK, `{"symbol":"AAPL"}`))

	c, err := client.Build(tr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := client.NewDescriptor[meta]("query1.finance.yahoo.com", "/v8/finance/chart/AAPL")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	resp, err := client.Perform(context.Background(), c, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(resp.Symbol)
	// Output: AAPL
}

func ExamplePerform_errors() {
	tr := clienttest.New(
		clienttest.Raw(http.StatusUnauthorized, `{"symbol":"AAPL"}`),
		clienttest.Raw(http.StatusInternalServerError, ""),
	)

	c, err := client.Build(tr)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := client.NewDescriptor[map[string]any]("query1.finance.yahoo.com", "/v8/finance/chart/AAPL")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for range 2 {
		_, err := client.Perform(context.Background(), c, d)
		switch {
		case errors.Is(err, client.ErrAuthenticationFailed):
			fmt.Println("auth:", err)
		case errors.Is(err, client.ErrInvalidResponse):
			fmt.Println("status:", err)
		}
	}
	// Output:
	// auth: authentication failed
	// status: invalid response: status 500
}
