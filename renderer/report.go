// Package renderer turns a SimulationReport into markdown, ready for a
// terminal or any markdown viewer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	simulator "github.com/rbeaulieu03/portfolio-simulator"
)

// ReportMarkdown renders the full simulation report: the run parameters, one
// section per strategy, and the month-by-month overlay of both portfolio
// values.
func ReportMarkdown(r *simulator.SimulationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Investment Simulation Results: %s", r.Request.Ticker))
	doc.PlainText(fmt.Sprintf("%s contributions of %s from %s to %s, versus a %s lump sum.",
		r.Request.Frequency, r.Request.AmountPerPeriod, r.Request.Start, r.Request.End, r.Request.LumpSumAmount))

	doc.H2("Dollar-Cost Averaging")
	doc.Table(strategyTable(r.DCA, r.DCAMetrics))

	doc.H2("Lump Sum")
	doc.Table(strategyTable(r.LumpSum, r.LumpSumMetrics))

	doc.H2("Portfolio Growth Over Time")
	doc.PlainText("Both strategies valued at month-end prices; DCA contributions are priced " +
		"at those same month-end points, an approximation of the exact schedule timing.")
	rows := make([][]string, len(r.Aligned))
	for i, p := range r.Aligned {
		rows[i] = []string{p.Date.String(), p.DCA.String(), p.LumpSum.String()}
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "DCA", "Lump Sum"},
		Rows:   rows,
	})

	return doc.String()
}

func strategyTable(res simulator.SimulationResult, perf simulator.Performance) md.TableSet {
	return md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Contributions", res.TotalContributed.String()},
			{"Total Shares Accumulated", res.TotalShares.String()},
			{"Final Portfolio Value", res.EndingValue.String()},
			{"Total Growth", perf.Growth.SignedString()},
			{"Total Return", perf.Return.String()},
			{"Average Annual Return (CAGR)", perf.CAGR.String()},
		},
	}
}
