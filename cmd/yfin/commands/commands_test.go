package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/adamwoolhether/yahoofinance/client"
	"github.com/adamwoolhether/yahoofinance/client/clienttest"
	"github.com/adamwoolhether/yahoofinance/cmd/yfin/commands"
)

const chartBody = `{"chart":{"result":[{
	"meta":{"symbol":"AAPL","currency":"USD","exchangeName":"NMS"},
	"timestamp":[1700000000,1700086400],
	"indicators":{"quote":[{"open":[185.0,186.0],"high":[187.5,188.0],"low":[184.2,185.5],"close":[186.9,187.25],"volume":[5100000,4200000]}]}
}],"error":null}}`

const quoteBody = `{"quoteResponse":{"result":[
	{"symbol":"AAPL","shortName":"Apple Inc.","currency":"USD","regularMarketPrice":189.5,"regularMarketChange":1.25,"regularMarketChangePercent":0.66,"regularMarketVolume":51000000},
	{"symbol":"MSFT","shortName":"Microsoft Corporation","currency":"USD","regularMarketPrice":378.91}
],"error":null}}`

func stubClient(t *testing.T, responses ...clienttest.Response) (commands.ClientFunc, *clienttest.Transport) {
	t.Helper()

	tr := clienttest.New(responses...)

	return func() (*client.Client, error) {
		return client.Build(tr, client.WithUserAgent(client.Safari))
	}, tr
}

func execute(t *testing.T, cmd *cobra.Command, output string, args ...string) (string, error) {
	t.Helper()

	viper.Set("output", output)
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return buf.String(), err
}

func TestNewChartCommand(t *testing.T) {
	newClient, _ := stubClient(t)
	cmd := commands.NewChartCommand(newClient)

	assert.Equal(t, "chart SYMBOL", cmd.Use)
	assert.Equal(t, []string{"history"}, cmd.Aliases)
	assert.NotNil(t, cmd.RunE)

	for _, flagName := range []string{"range", "interval", "start", "end", "prepost", "events"} {
		assert.NotNil(t, cmd.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestChartCommand_Table(t *testing.T) {
	newClient, tr := stubClient(t, clienttest.Raw(http.StatusOK, chartBody))

	out, err := execute(t, commands.NewChartCommand(newClient), commands.OutputFormatTable, "AAPL", "--range", "5d", "--prepost")
	require.NoError(t, err)

	assert.Contains(t, out, "AAPL (NMS, USD)")
	assert.Contains(t, out, "186.90")
	assert.Contains(t, out, "187.25")
	assert.Contains(t, out, "4200000")

	call, ok := tr.LastCall()
	require.True(t, ok)
	assert.Equal(t, "/v8/finance/chart/AAPL?interval=1d&range=5d&includePrePost=true", call.Request.Path)
	assert.Equal(t, string(client.Safari), call.Request.Header.Get("User-Agent"))
}

func TestChartCommand_JSON(t *testing.T) {
	newClient, _ := stubClient(t, clienttest.Raw(http.StatusOK, chartBody))

	out, err := execute(t, commands.NewChartCommand(newClient), commands.OutputFormatJSON, "AAPL")
	require.NoError(t, err)

	var got struct {
		Meta struct {
			Symbol string `json:"symbol"`
		} `json:"meta"`
		Bars []struct {
			Close  float64 `json:"close"`
			Volume int64   `json:"volume"`
		} `json:"bars"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "AAPL", got.Meta.Symbol)
	require.Len(t, got.Bars, 2)
	assert.Equal(t, 186.9, got.Bars[0].Close)
	assert.Equal(t, int64(4200000), got.Bars[1].Volume)
}

func TestChartCommand_Period(t *testing.T) {
	newClient, tr := stubClient(t, clienttest.Raw(http.StatusOK, chartBody))

	_, err := execute(t, commands.NewChartCommand(newClient), commands.OutputFormatJSON, "AAPL", "--start", "2024-01-02", "--end", "2024-02-01", "--events", "div,split")
	require.NoError(t, err)

	call, ok := tr.LastCall()
	require.True(t, ok)
	assert.Equal(t, "/v8/finance/chart/AAPL?interval=1d&period1=1704153600&period2=1706745600&events=div%7Csplit", call.Request.Path)
}

func TestChartCommand_Errors(t *testing.T) {
	testCases := map[string]struct {
		args     []string
		response clienttest.Response
		sentinel error
	}{
		"startWithoutEnd": {args: []string{"AAPL", "--start", "2024-01-02"}},
		"badDate":         {args: []string{"AAPL", "--start", "01/02/2024", "--end", "2024-02-01"}},
		"badRange":        {args: []string{"AAPL", "--range", "2w"}},
		"noSymbol":        {args: []string{}},
		"unauthorized": {
			args:     []string{"AAPL"},
			response: clienttest.Raw(http.StatusUnauthorized, ""),
			sentinel: client.ErrAuthenticationFailed,
		},
		"serverError": {
			args:     []string{"AAPL"},
			response: clienttest.Raw(http.StatusInternalServerError, ""),
			sentinel: client.ErrInvalidResponse,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			newClient, _ := stubClient(t, tc.response)

			_, err := execute(t, commands.NewChartCommand(newClient), commands.OutputFormatTable, tc.args...)
			require.Error(t, err)
			if tc.sentinel != nil {
				assert.ErrorIs(t, err, tc.sentinel)
			}
		})
	}
}

func TestQuoteCommand_Table(t *testing.T) {
	newClient, tr := stubClient(t, clienttest.Raw(http.StatusOK, quoteBody))

	out, err := execute(t, commands.NewQuoteCommand(newClient), commands.OutputFormatTable, "AAPL", "MSFT")
	require.NoError(t, err)

	assert.Contains(t, out, "Apple Inc.")
	assert.Contains(t, out, "189.50")
	assert.Contains(t, out, "378.91")

	call, ok := tr.LastCall()
	require.True(t, ok)
	assert.Equal(t, "/v7/finance/quote?symbols=AAPL,MSFT", call.Request.Path)
}

func TestQuoteCommand_YAML(t *testing.T) {
	newClient, _ := stubClient(t, clienttest.Raw(http.StatusOK, quoteBody))

	out, err := execute(t, commands.NewQuoteCommand(newClient), commands.OutputFormatYAML, "AAPL", "MSFT")
	require.NoError(t, err)

	var got []struct {
		Symbol             string  `yaml:"symbol"`
		RegularMarketPrice float64 `yaml:"regularMarketPrice"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	require.Len(t, got, 2)
	assert.Equal(t, "AAPL", got[0].Symbol)
	assert.Equal(t, 378.91, got[1].RegularMarketPrice)
}

func TestQuoteCommand_UnknownOutput(t *testing.T) {
	newClient, _ := stubClient(t, clienttest.Raw(http.StatusOK, quoteBody))

	_, err := execute(t, commands.NewQuoteCommand(newClient), "xml", "AAPL")
	assert.ErrorContains(t, err, "unknown output format")
}
