package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	simulator "github.com/rbeaulieu03/portfolio-simulator"
	"github.com/rbeaulieu03/portfolio-simulator/renderer"
)

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	simulationFlags
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "compare DCA and lump-sum investing on an asset" }
func (*simulateCmd) Usage() string {
	return `psim simulate [-t <ticker>] [-a <amount>] [-lump <amount>] [-s <date>] [-d <date>] [-f <frequency>]

  Downloads the asset's price history, simulates periodic (DCA) and lump-sum
  investing over the range, and prints a markdown report of both strategies.

Usage Examples:
# $200 every month into SPY since 2020, against a $10000 lump sum.
$ psim simulate -t SPY -a 200 -lump 10000 -s 2020-01-01 -f monthly

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	d, err := LoadDefaults(defaultsPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	f.StringVar(&c.ticker, "t", d.Ticker, "Asset ticker (e.g. SPY, AAPL, BTC-USD)")
	f.Float64Var(&c.amount, "a", d.Amount, "Investment amount per period")
	f.Float64Var(&c.lumpSum, "lump", d.LumpSum, "Total lump-sum investment amount")
	f.StringVar(&c.start, "s", d.Start, "Start date of the investment horizon (YYYY-MM-DD)")
	f.StringVar(&c.end, "d", "", "End date of the investment horizon. Defaults to today.")
	f.StringVar(&c.frequency, "f", d.Frequency, "Contribution frequency (daily, weekly, monthly, quarterly, semiannually, annually)")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req, series, err := c.request()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := simulator.Simulate(req, series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Print(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
