// Package simulator compares two ways of investing in a single asset over a
// historical price series: periodic Dollar-Cost Averaging (DCA) and a single
// upfront Lump-Sum purchase.
//
// The core functionalities include:
//   - Schedule Generation: mapping a recurring calendar frequency (daily to
//     annually) onto the concrete trading days available in a price series,
//     rolling forward over non-trading days.
//   - Simulation: accumulating share purchases and portfolio value under each
//     strategy, with exact decimal money arithmetic and no rounding until
//     presentation.
//   - Performance Metrics: absolute growth, percentage return and compound
//     annual growth rate (CAGR) over the investment horizon.
//   - Series Alignment: both strategies valued on a common resampled date
//     axis, ready for a text summary or an overlay chart.
//
// The package is a pure computation layer: it receives validated parameters
// and an already-materialized price series, and returns a SimulationReport.
// Fetching quotes, collecting user input and rendering are the callers'
// business (see the yahoo, renderer, chart and cmd packages).
package simulator
