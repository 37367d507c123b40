package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rbeaulieu03/portfolio-simulator/yahoo"
)

type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "show the latest market price of a ticker" }
func (*quoteCmd) Usage() string {
	return `psim quote <ticker>...

  Fetches and prints the most recent intraday price for each ticker.

`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required")
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	client := yahoo.NewClient()
	for _, ticker := range f.Args() {
		price, err := client.Latest(ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %q: %v\n", ticker, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s %.2f\n", ticker, price)
	}
	return status
}
