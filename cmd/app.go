// Package cmd implements the CLI application to simulate investment strategies.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	simulator "github.com/rbeaulieu03/portfolio-simulator"
	"github.com/rbeaulieu03/portfolio-simulator/yahoo"
	"gopkg.in/yaml.v3"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&simulateCmd{}, "simulation")
	c.Register(&chartCmd{}, "simulation")
	c.Register(&quoteCmd{}, "securities")
}

// defaultsPath locates the yaml defaults file: $PSIM_DEFAULTS when set,
// otherwise ~/.psim.yaml. It cannot be a regular flag because the defaults
// feed the other flags' default values, before parsing.
func defaultsPath() string {
	if v := os.Getenv("PSIM_DEFAULTS"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".psim.yaml"
	}
	return filepath.Join(home, ".psim.yaml")
}

// Defaults are the user-tunable flag defaults, loadable from a yaml file so
// that frequent runs don't repeat the same flags.
type Defaults struct {
	Ticker    string  `yaml:"ticker"`
	Amount    float64 `yaml:"amount"`
	LumpSum   float64 `yaml:"lump_sum"`
	Start     string  `yaml:"start"`
	Frequency string  `yaml:"frequency"`
}

// LoadDefaults reads the defaults file, filling in the reference values for
// anything unset. A missing file is not an error.
func LoadDefaults(path string) (Defaults, error) {
	d := Defaults{Ticker: "SPY", Amount: 200, LumpSum: 10000, Start: "2020-01-01", Frequency: "monthly"}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return d, fmt.Errorf("read defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &d); err != nil {
			return d, fmt.Errorf("parse defaults %q: %w", path, err)
		}
	}
	return d, nil
}

// simulationFlags are the flags shared by the simulate and chart commands.
type simulationFlags struct {
	ticker    string
	amount    float64
	lumpSum   float64
	start     string
	end       string
	frequency string
}

// request resolves the flags into a validated request and the fetched series.
func (c *simulationFlags) request() (simulator.SimulationRequest, *simulator.PriceSeries, error) {
	var zero simulator.SimulationRequest

	start, err := simulator.ParseDate(c.start)
	if err != nil {
		return zero, nil, fmt.Errorf("invalid start date: %w", err)
	}
	end := simulator.Today()
	if c.end != "" {
		if end, err = simulator.ParseDate(c.end); err != nil {
			return zero, nil, fmt.Errorf("invalid end date: %w", err)
		}
	}
	frequency, err := simulator.ParseFrequency(c.frequency)
	if err != nil {
		return zero, nil, err
	}

	series, err := yahoo.NewClient().Fetch(c.ticker, start, end)
	if err != nil {
		return zero, nil, fmt.Errorf("no data for ticker %q: %w", c.ticker, err)
	}
	currency := series.LastPrice().Currency()

	req := simulator.SimulationRequest{
		Ticker:          c.ticker,
		AmountPerPeriod: simulator.M(c.amount, currency),
		LumpSumAmount:   simulator.M(c.lumpSum, currency),
		Start:           start,
		End:             end,
		Frequency:       frequency,
	}
	if err := req.Validate(); err != nil {
		return zero, nil, err
	}
	return req, series, nil
}
