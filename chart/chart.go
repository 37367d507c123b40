// Package chart renders the DCA versus lump-sum overlay as a PNG line chart.
package chart

import (
	"errors"
	"fmt"

	simulator "github.com/rbeaulieu03/portfolio-simulator"
	charts "github.com/vicanso/go-charts/v2"
)

// Overlay renders both portfolio-value curves of the report on a single
// time axis and returns the PNG bytes.
func Overlay(report *simulator.SimulationReport) ([]byte, error) {
	aligned := report.Aligned
	if len(aligned) < 2 {
		return nil, errors.New("not enough data points")
	}

	labels := make([]string, len(aligned))
	dca := make([]float64, len(aligned))
	lump := make([]float64, len(aligned))
	yMin, yMax := aligned[0].DCA.AsFloat(), aligned[0].DCA.AsFloat()
	for i, p := range aligned {
		labels[i] = p.Date.Format("2006-01")
		dca[i] = p.DCA.AsFloat()
		lump[i] = p.LumpSum.AsFloat()
		for _, v := range []float64{dca[i], lump[i]} {
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	split := len(labels)
	if split > 10 {
		split = 10
	}

	painter, err := charts.LineRender([][]float64{dca, lump},
		charts.TitleTextOptionFunc(fmt.Sprintf("Portfolio Growth Simulation: %s", report.Request.Ticker)),
		charts.LegendLabelsOptionFunc([]string{"Dollar-Cost Averaging (DCA)", "Lump-Sum Investment"}),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(700),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
