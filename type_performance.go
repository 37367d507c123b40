package simulator

import "math"

// Performance holds the derived metrics of one strategy over the horizon.
type Performance struct {
	Growth Money   // ending value minus total contributed
	Return Percent // growth over contributions, in percent points
	CAGR   Percent // compound annual growth rate, in percent points
}

// NewPerformance derives the metrics from a simulation result and the
// elapsed horizon. Degenerate inputs (nothing contributed, or a zero or
// negative horizon) define the dependent metrics as 0 instead of failing, to
// keep reporting total. The formulas are strategy-agnostic.
func NewPerformance(r SimulationResult, start, end Date) Performance {
	p := Performance{Growth: r.EndingValue.Sub(r.TotalContributed)}
	contributed := r.TotalContributed.AsFloat()
	if contributed == 0 {
		return p
	}
	p.Return = Percent(100 * p.Growth.AsFloat() / contributed)

	years := float64(end.Sub(start)) / 365.25
	if years > 0 {
		p.CAGR = Percent(100 * (math.Pow(r.EndingValue.AsFloat()/contributed, 1/years) - 1))
	}
	return p
}
