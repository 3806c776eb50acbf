package yahoofinance

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/query"
)

// Range is the span of history a chart covers.
type Range string

const (
	Range1d  Range = "1d"
	Range5d  Range = "5d"
	Range1mo Range = "1mo"
	Range3mo Range = "3mo"
	Range6mo Range = "6mo"
	Range1y  Range = "1y"
	Range2y  Range = "2y"
	Range5y  Range = "5y"
	Range10y Range = "10y"
	RangeYTD Range = "ytd"
	RangeMax Range = "max"
)

// Interval is the width of one chart bar.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval2m  Interval = "2m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval60m Interval = "60m"
	Interval90m Interval = "90m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
	Interval5d  Interval = "5d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"
	Interval3mo Interval = "3mo"
)

// Chart events that can be requested with [WithEvents].
const (
	EventDividends = "div"
	EventSplits    = "split"
	EventEarnings  = "earn"
)

const chartPath = "/v8/finance/chart/"

// ChartOption is a functional option for [ChartRequest].
type ChartOption func(*chartOpts) error
type chartOpts struct {
	authority string
	rng       Range
	interval  Interval
	start     time.Time
	end       time.Time
	prePost   bool
	events    []string
}

// chartFields is the validated view of a chart request.
type chartFields struct {
	Symbol   string   `json:"symbol" validate:"required"`
	Range    string   `json:"range" validate:"omitempty,oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`
	Interval string   `json:"interval" validate:"oneof=1m 2m 5m 15m 30m 60m 90m 1h 1d 5d 1wk 1mo 3mo"`
	Events   []string `json:"events" validate:"dive,oneof=div split earn"`
}

// ChartRequest describes a price history request for symbol. Without
// options it asks query2 for one month of daily bars. A period set with
// [WithPeriod] takes precedence over the range.
func ChartRequest(symbol string, opts ...ChartOption) (client.Descriptor[ChartResponse], error) {
	settings := chartOpts{
		authority: Query2,
		rng:       Range1mo,
		interval:  Interval1d,
	}
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return client.Descriptor[ChartResponse]{}, fmt.Errorf("applying chart option: %w", err)
		}
	}

	usePeriod := !settings.start.IsZero()

	fields := chartFields{
		Symbol:   symbol,
		Interval: string(settings.interval),
		Events:   settings.events,
	}
	if !usePeriod {
		fields.Range = string(settings.rng)
	}
	if err := client.Validate(fields); err != nil {
		return client.Descriptor[ChartResponse]{}, fmt.Errorf("validating chart request: %w", err)
	}

	q := query.Query{query.Param("interval", string(settings.interval))}
	if usePeriod {
		q.Append(
			query.Of("period1", settings.start.Unix()),
			query.Of("period2", settings.end.Unix()),
		)
	} else {
		q.Append(query.Param("range", string(settings.rng)))
	}
	if settings.prePost {
		q.Append(query.Of("includePrePost", true))
	}
	if len(settings.events) > 0 {
		q.Append(query.Param("events", strings.Join(settings.events, "|")))
	}

	return client.NewDescriptor[ChartResponse](settings.authority, chartPath+url.PathEscape(symbol), client.WithQuery(q))
}

// WithRange sets the span of history. The default is one month.
func WithRange(r Range) ChartOption {
	return func(opts *chartOpts) error {
		opts.rng = r
		return nil
	}
}

// WithInterval sets the bar width. The default is one day.
func WithInterval(i Interval) ChartOption {
	return func(opts *chartOpts) error {
		opts.interval = i
		return nil
	}
}

// WithPeriod requests the bars between start and end instead of a range.
func WithPeriod(start, end time.Time) ChartOption {
	return func(opts *chartOpts) error {
		if start.IsZero() || end.IsZero() {
			return errors.New("period bounds must be set")
		}
		if !end.After(start) {
			return errors.New("period end must be after start")
		}
		opts.start = start
		opts.end = end
		return nil
	}
}

// WithPrePost includes pre and post market bars for intraday intervals.
func WithPrePost() ChartOption {
	return func(opts *chartOpts) error {
		opts.prePost = true
		return nil
	}
}

// WithEvents attaches corporate events, such as [EventDividends], to the
// chart.
func WithEvents(events ...string) ChartOption {
	return func(opts *chartOpts) error {
		opts.events = append(opts.events, events...)
		return nil
	}
}

// WithAuthority sends the request to another host, such as [Query1].
func WithAuthority(authority string) ChartOption {
	return func(opts *chartOpts) error {
		if authority == "" {
			return errors.New("authority must not be empty")
		}
		opts.authority = authority
		return nil
	}
}

// ChartResponse is the body of a chart request.
type ChartResponse struct {
	Chart Chart `json:"chart" yaml:"chart"`
}

// Chart holds the results, or the error Yahoo reported.
type Chart struct {
	Result []ChartResult `json:"result" yaml:"result" validate:"required,min=1,dive"`
	Error  *APIError     `json:"error" yaml:"error"`
}

// ChartResult is the history of one symbol.
type ChartResult struct {
	Meta       ChartMeta  `json:"meta" yaml:"meta"`
	Timestamp  []int64    `json:"timestamp" yaml:"timestamp"`
	Indicators Indicators `json:"indicators" yaml:"indicators"`
}

// ChartMeta describes the instrument and the request that produced the chart.
type ChartMeta struct {
	Symbol               string  `json:"symbol" yaml:"symbol" validate:"required"`
	Currency             string  `json:"currency" yaml:"currency"`
	ExchangeName         string  `json:"exchangeName" yaml:"exchangeName"`
	InstrumentType       string  `json:"instrumentType" yaml:"instrumentType"`
	Timezone             string  `json:"timezone" yaml:"timezone"`
	ExchangeTimezoneName string  `json:"exchangeTimezoneName" yaml:"exchangeTimezoneName"`
	RegularMarketPrice   float64 `json:"regularMarketPrice" yaml:"regularMarketPrice"`
	ChartPreviousClose   float64 `json:"chartPreviousClose" yaml:"chartPreviousClose"`
	DataGranularity      string  `json:"dataGranularity" yaml:"dataGranularity"`
	Range                string  `json:"range" yaml:"range"`
}

// Indicators are parallel arrays indexed like ChartResult.Timestamp.
// Missing samples are null.
type Indicators struct {
	Quote    []QuoteIndicator    `json:"quote" yaml:"quote"`
	AdjClose []AdjCloseIndicator `json:"adjclose,omitempty" yaml:"adjclose,omitempty"`
}

// QuoteIndicator holds the OHLCV series of a chart result.
type QuoteIndicator struct {
	Open   []*float64 `json:"open" yaml:"open"`
	High   []*float64 `json:"high" yaml:"high"`
	Low    []*float64 `json:"low" yaml:"low"`
	Close  []*float64 `json:"close" yaml:"close"`
	Volume []*int64   `json:"volume" yaml:"volume"`
}

// AdjCloseIndicator holds the split and dividend adjusted closes.
type AdjCloseIndicator struct {
	AdjClose []*float64 `json:"adjclose" yaml:"adjclose"`
}

// Bar is one OHLCV sample.
type Bar struct {
	Time     time.Time `json:"time" yaml:"time"`
	Open     float64   `json:"open" yaml:"open"`
	High     float64   `json:"high" yaml:"high"`
	Low      float64   `json:"low" yaml:"low"`
	Close    float64   `json:"close" yaml:"close"`
	AdjClose float64   `json:"adjClose,omitempty" yaml:"adjClose,omitempty"`
	Volume   int64     `json:"volume" yaml:"volume"`
}

// Meta returns the metadata of the first result.
func (r ChartResponse) Meta() ChartMeta {
	if len(r.Chart.Result) == 0 {
		return ChartMeta{}
	}

	return r.Chart.Result[0].Meta
}

// Bars flattens the first result into bars, in timestamp order. Samples
// without a close price are skipped; other missing values are zero.
func (r ChartResponse) Bars() []Bar {
	if len(r.Chart.Result) == 0 {
		return nil
	}

	res := r.Chart.Result[0]
	if len(res.Indicators.Quote) == 0 {
		return nil
	}
	q := res.Indicators.Quote[0]

	var adj []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	bars := make([]Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		closePrice := at(q.Close, i)
		if closePrice == nil {
			continue
		}

		bar := Bar{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *closePrice,
		}
		if v := at(q.Open, i); v != nil {
			bar.Open = *v
		}
		if v := at(q.High, i); v != nil {
			bar.High = *v
		}
		if v := at(q.Low, i); v != nil {
			bar.Low = *v
		}
		if v := at(q.Volume, i); v != nil {
			bar.Volume = *v
		}
		if v := at(adj, i); v != nil {
			bar.AdjClose = *v
		}

		bars = append(bars, bar)
	}

	return bars
}

func at[T any](s []*T, i int) *T {
	if i >= len(s) {
		return nil
	}

	return s[i]
}
