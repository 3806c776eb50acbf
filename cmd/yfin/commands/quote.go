package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/adamwoolhether/yahoofinance"
	"github.com/adamwoolhether/yahoofinance/client"
)

// NewQuoteCommand creates the quote command
func NewQuoteCommand(newClient ClientFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "quote SYMBOL...",
		Aliases: []string{"quotes", "q"},
		Short:   "Show market quotes",
		Long:    "Fetch a market snapshot for one or more symbols",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := yahoofinance.QuoteRequest(args...)
			if err != nil {
				return err
			}

			c, err := newClient()
			if err != nil {
				return err
			}

			resp, err := client.Perform(cmd.Context(), c, d)
			if err != nil {
				return fmt.Errorf("failed to get quotes: %w", err)
			}

			quotes := resp.Quotes()

			return render(cmd.OutOrStdout(), quotes, func(w io.Writer) error {
				return renderQuotesTable(w, quotes)
			})
		},
	}
}

func renderQuotesTable(w io.Writer, quotes []yahoofinance.Quote) error {
	if len(quotes) == 0 {
		_, err := fmt.Fprintln(w, "No quotes found")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header("Symbol", "Name", "Price", "Change", "Change %", "Volume", "Currency")

	for _, q := range quotes {
		_ = table.Append([]string{
			q.Symbol,
			q.ShortName,
			formatPrice(q.RegularMarketPrice),
			formatPrice(q.RegularMarketChange),
			formatPrice(q.RegularMarketChangePercent),
			strconv.FormatInt(q.RegularMarketVolume, 10),
			q.Currency,
		})
	}

	return table.Render()
}
