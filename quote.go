package yahoofinance

import (
	"fmt"
	"strings"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/query"
)

const quotePath = "/v7/finance/quote"

type quoteFields struct {
	Symbols []string `json:"symbols" validate:"required,min=1,dive,required"`
}

// QuoteRequest describes a snapshot request for one or more symbols.
func QuoteRequest(symbols ...string) (client.Descriptor[QuoteResponse], error) {
	if err := client.Validate(quoteFields{Symbols: symbols}); err != nil {
		return client.Descriptor[QuoteResponse]{}, fmt.Errorf("validating quote request: %w", err)
	}

	q := query.Query{query.Param("symbols", strings.Join(symbols, ","))}

	return client.NewDescriptor[QuoteResponse](Query1, quotePath, client.WithQuery(q))
}

// QuoteResponse is the body of a quote request.
type QuoteResponse struct {
	QuoteResponse QuoteResult `json:"quoteResponse" yaml:"quoteResponse"`
}

// QuoteResult holds the quotes, or the error Yahoo reported.
type QuoteResult struct {
	Result []Quote   `json:"result" yaml:"result" validate:"dive"`
	Error  *APIError `json:"error" yaml:"error"`
}

// Quote is a market snapshot of one symbol.
type Quote struct {
	Symbol                     string  `json:"symbol" yaml:"symbol" validate:"required"`
	ShortName                  string  `json:"shortName" yaml:"shortName"`
	LongName                   string  `json:"longName" yaml:"longName"`
	QuoteType                  string  `json:"quoteType" yaml:"quoteType"`
	Currency                   string  `json:"currency" yaml:"currency"`
	Exchange                   string  `json:"exchange" yaml:"exchange"`
	MarketState                string  `json:"marketState" yaml:"marketState"`
	RegularMarketPrice         float64 `json:"regularMarketPrice" yaml:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange" yaml:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent" yaml:"regularMarketChangePercent"`
	RegularMarketVolume        int64   `json:"regularMarketVolume" yaml:"regularMarketVolume"`
	RegularMarketTime          int64   `json:"regularMarketTime" yaml:"regularMarketTime"`
	FiftyTwoWeekLow            float64 `json:"fiftyTwoWeekLow" yaml:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh           float64 `json:"fiftyTwoWeekHigh" yaml:"fiftyTwoWeekHigh"`
}

// Quotes returns the quotes in response order.
func (r QuoteResponse) Quotes() []Quote {
	return r.QuoteResponse.Result
}
