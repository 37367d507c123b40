package simulator

import "fmt"

// SimulationRequest carries the validated simulation parameters. The ticker
// is an opaque identifier: the core never interprets it.
type SimulationRequest struct {
	Ticker          string
	AmountPerPeriod Money
	LumpSumAmount   Money
	Start, End      Date
	Frequency       Frequency
}

// Validate checks the request invariants and returns an error describing the
// first violation.
func (r SimulationRequest) Validate() error {
	if !r.AmountPerPeriod.IsPositive() {
		return fmt.Errorf("amount per period must be positive, got %s", r.AmountPerPeriod)
	}
	if !r.LumpSumAmount.IsPositive() {
		return fmt.Errorf("lump-sum amount must be positive, got %s", r.LumpSumAmount)
	}
	if r.End.Before(r.Start) {
		return fmt.Errorf("end date %s is before start date %s", r.End, r.Start)
	}
	if !r.Frequency.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFrequency, int(r.Frequency))
	}
	return nil
}

// SimulationReport is everything a caller needs to render both text
// summaries and an overlay chart without re-deriving any number.
type SimulationReport struct {
	Request SimulationRequest

	DCA            SimulationResult
	DCAMetrics     Performance
	LumpSum        SimulationResult
	LumpSumMetrics Performance

	// Aligned holds both portfolio values on the common monthly axis.
	Aligned []AlignedPoint
}

// Simulate runs both strategies against the price series and reports them on
// a common monthly axis. It is a pure function over its inputs: no ambient
// state, safe to call concurrently for independent runs.
func Simulate(req SimulationRequest, series *PriceSeries) (*SimulationReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptyPriceSeries
	}

	schedule, err := GenerateSchedule(req.Start, req.End, req.Frequency, series)
	if err != nil {
		return nil, err
	}

	dca, err := RunDCA(schedule, series, req.AmountPerPeriod)
	if err != nil {
		return nil, err
	}

	monthly := series.ResamplePeriodEnd(Monthly)
	dca.ValueOverTime = AlignDCA(monthly, req.AmountPerPeriod)

	lumpSum, err := RunLumpSum(monthly, req.LumpSumAmount)
	if err != nil {
		return nil, err
	}

	return &SimulationReport{
		Request:        req,
		DCA:            dca,
		DCAMetrics:     NewPerformance(dca, req.Start, req.End),
		LumpSum:        lumpSum,
		LumpSumMetrics: NewPerformance(lumpSum, req.Start, req.End),
		Aligned:        AlignSeries(dca.ValueOverTime, lumpSum.ValueOverTime),
	}, nil
}
