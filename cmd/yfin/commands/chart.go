package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/yahoofinance"
	"github.com/adamwoolhether/yahoofinance/client"
)

const dateLayout = "2006-01-02"

type chartOutput struct {
	Meta yahoofinance.ChartMeta `json:"meta" yaml:"meta"`
	Bars []yahoofinance.Bar     `json:"bars" yaml:"bars"`
}

// NewChartCommand creates the chart command
func NewChartCommand(newClient ClientFunc) *cobra.Command {
	var (
		rng      string
		interval string
		start    string
		end      string
		prePost  bool
		events   []string
	)

	cmd := &cobra.Command{
		Use:     "chart SYMBOL",
		Aliases: []string{"history"},
		Short:   "Show price history",
		Long:    "Fetch OHLCV bars for a symbol over a range or an explicit period",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []yahoofinance.ChartOption{
				yahoofinance.WithRange(yahoofinance.Range(rng)),
				yahoofinance.WithInterval(yahoofinance.Interval(interval)),
			}

			switch {
			case start != "" && end != "":
				from, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date: %w", err)
				}
				to, err := time.Parse(dateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date: %w", err)
				}
				opts = append(opts, yahoofinance.WithPeriod(from, to))
			case start != "" || end != "":
				return errors.New("--start and --end must be used together")
			}

			if prePost {
				opts = append(opts, yahoofinance.WithPrePost())
			}
			if len(events) > 0 {
				opts = append(opts, yahoofinance.WithEvents(events...))
			}

			d, err := yahoofinance.ChartRequest(args[0], opts...)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Perform(cmd.Context(), c, d)
			if err != nil {
				return fmt.Errorf("failed to get chart for %s: %w", args[0], err)
			}

			out := chartOutput{Meta: resp.Meta(), Bars: resp.Bars()}

			return render(cmd.OutOrStdout(), out, func(w io.Writer) error {
				return renderChartTable(w, out)
			})
		},
	}

	cmd.Flags().StringVarP(&rng, "range", "r", string(yahoofinance.Range1mo), "history range (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max)")
	cmd.Flags().StringVarP(&interval, "interval", "i", string(yahoofinance.Interval1d), "bar interval (1m, 5m, 15m, 1h, 1d, 1wk, 1mo, ...)")
	cmd.Flags().StringVar(&start, "start", "", "period start date (YYYY-MM-DD), overrides --range")
	cmd.Flags().StringVar(&end, "end", "", "period end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&prePost, "prepost", false, "include pre and post market bars")
	cmd.Flags().StringSliceVar(&events, "events", nil, "corporate events to include (div, split, earn)")

	return cmd
}

func renderChartTable(w io.Writer, out chartOutput) error {
	if len(out.Bars) == 0 {
		_, err := fmt.Fprintf(w, "No bars found for %s\n", out.Meta.Symbol)
		return err
	}

	_, _ = fmt.Fprintf(w, "%s (%s, %s)\n\n", out.Meta.Symbol, out.Meta.ExchangeName, out.Meta.Currency)

	table := tablewriter.NewWriter(w)
	table.Header("Time", "Open", "High", "Low", "Close", "Volume")

	for _, bar := range out.Bars {
		_ = table.Append([]string{
			bar.Time.Format("2006-01-02 15:04"),
			formatPrice(bar.Open),
			formatPrice(bar.High),
			formatPrice(bar.Low),
			formatPrice(bar.Close),
			strconv.FormatInt(bar.Volume, 10),
		})
	}

	return table.Render()
}
