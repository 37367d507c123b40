package simulator

import "fmt"

// ValuePoint is the portfolio value on a given trading day.
type ValuePoint struct {
	Date  Date
	Value Money
}

// SimulationResult holds the outcome of one strategy run. It is immutable
// once produced; Performance metrics are derived from it separately.
type SimulationResult struct {
	TotalContributed Money
	TotalShares      Quantity
	EndingValue      Money
	ValueOverTime    []ValuePoint
}

// RunDCA walks the schedule in order, converting each fixed contribution
// into shares at that day's price and accumulating the running totals.
// Arithmetic is exact decimal; nothing is rounded during accumulation.
// The ending value marks all accumulated shares at the last observed price.
//
// A schedule date absent from the series violates the pipeline invariant and
// aborts the run with ErrMissingDate: that is a generator bug, not a user
// error. ValueOverTime is left nil here, Simulate fills it on the resampled
// axis (see AlignDCA).
func RunDCA(schedule Schedule, series *PriceSeries, amountPerPeriod Money) (SimulationResult, error) {
	if series == nil || series.Len() == 0 {
		return SimulationResult{}, ErrEmptyPriceSeries
	}
	var contributed Money
	var shares Quantity
	for _, on := range schedule {
		price, err := series.Price(on)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("dca run: %w", err)
		}
		contributed = contributed.Add(amountPerPeriod)
		shares = shares.Add(amountPerPeriod.DivPrice(price))
	}
	return SimulationResult{
		TotalContributed: contributed,
		TotalShares:      shares,
		EndingValue:      series.LastPrice().Mul(shares),
	}, nil
}

// RunLumpSum invests the whole amount at the first point of the resampled
// series and tracks its value across every resampled point. The entry price
// is deliberately the first period-end price, not the first raw observation,
// to stay on the same axis as the DCA valuation.
func RunLumpSum(resampled []PricePoint, amount Money) (SimulationResult, error) {
	if len(resampled) == 0 {
		return SimulationResult{}, ErrEmptyPriceSeries
	}
	shares := amount.DivPrice(resampled[0].Price)
	values := make([]ValuePoint, len(resampled))
	for i, p := range resampled {
		values[i] = ValuePoint{Date: p.Date, Value: p.Price.Mul(shares)}
	}
	return SimulationResult{
		TotalContributed: amount,
		TotalShares:      shares,
		EndingValue:      values[len(values)-1].Value,
		ValueOverTime:    values,
	}, nil
}
