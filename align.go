package simulator

// AlignedPoint carries both portfolio values on one date of the common
// resampled axis, ready for a direct overlay.
type AlignedPoint struct {
	Date    Date
	DCA     Money
	LumpSum Money
}

// AlignDCA values the DCA portfolio on the resampled date axis: at each
// resampled point the shares owned are the cumulative sum of
// amountPerPeriod/price over every resampled point up to and including it,
// and the value is those shares at that point's price.
//
// This is a deliberate approximation of true DCA timing: contributions are
// priced at period-end resampled prices, not at the exact schedule dates. A
// period without an observation yields no resampled point and therefore
// contributes nothing; no forward-fill is applied here.
func AlignDCA(resampled []PricePoint, amountPerPeriod Money) []ValuePoint {
	var shares Quantity
	values := make([]ValuePoint, len(resampled))
	for i, p := range resampled {
		shares = shares.Add(amountPerPeriod.DivPrice(p.Price))
		values[i] = ValuePoint{Date: p.Date, Value: p.Price.Mul(shares)}
	}
	return values
}

// AlignSeries zips the two per-strategy valuations, already on the same
// resampled axis, into one overlay series.
func AlignSeries(dca, lumpSum []ValuePoint) []AlignedPoint {
	n := len(dca)
	if len(lumpSum) < n {
		n = len(lumpSum)
	}
	aligned := make([]AlignedPoint, n)
	for i := range aligned {
		aligned[i] = AlignedPoint{Date: dca[i].Date, DCA: dca[i].Value, LumpSum: lumpSum[i].Value}
	}
	return aligned
}
