package simulator

import (
	"errors"
	"fmt"
	"slices"
)

// PricePoint is one observation of the asset price on a trading day.
type PricePoint struct {
	Date  Date
	Price Money
}

// ErrEmptyPriceSeries reports that there is no usable price data for the
// requested asset and range. It is fatal and must be surfaced to the end
// user as "no data" before any simulation runs.
var ErrEmptyPriceSeries = errors.New("empty price series")

// ErrMissingDate reports a lookup for a date that is not a trading day of
// the series. When it escapes from a simulation it is an internal
// consistency bug (a schedule or resample produced a date outside the
// series), not a user error.
var ErrMissingDate = errors.New("no price for date")

// PriceSeries holds the chronological price history of a single asset.
// It is built once from external data and read-only afterward; every date
// holding an observation is a "trading day" of the asset.
type PriceSeries struct {
	points []PricePoint
	index  map[Date]Money
}

// NewPriceSeries builds a series from raw observations. The input is sorted
// chronologically; duplicate dates and non-positive prices are rejected, and
// an empty input fails with ErrEmptyPriceSeries.
func NewPriceSeries(points []PricePoint) (*PriceSeries, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPriceSeries
	}
	pts := slices.Clone(points)
	slices.SortFunc(pts, func(a, b PricePoint) int { return compareDates(a.Date, b.Date) })

	s := &PriceSeries{points: pts, index: make(map[Date]Money, len(pts))}
	for i, p := range pts {
		if !p.Price.IsPositive() {
			return nil, fmt.Errorf("price on %s is not positive", p.Date)
		}
		if i > 0 && p.Date == pts[i-1].Date {
			return nil, fmt.Errorf("duplicate price on %s", p.Date)
		}
		s.index[p.Date] = p.Price
	}
	return s, nil
}

func compareDates(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int { return len(s.points) }

// Has reports whether 'on' is a trading day of the series.
func (s *PriceSeries) Has(on Date) bool {
	_, ok := s.index[on]
	return ok
}

// Price returns the observed price on exactly that trading day.
func (s *PriceSeries) Price(on Date) (Money, error) {
	p, ok := s.index[on]
	if !ok {
		return Money{}, fmt.Errorf("%w: %s", ErrMissingDate, on)
	}
	return p, nil
}

// TradingDays returns all trading days in chronological order.
func (s *PriceSeries) TradingDays() []Date {
	days := make([]Date, len(s.points))
	for i, p := range s.points {
		days[i] = p.Date
	}
	return days
}

// First returns the chronologically first observation.
func (s *PriceSeries) First() PricePoint { return s.points[0] }

// Last returns the chronologically last observation.
func (s *PriceSeries) Last() PricePoint { return s.points[len(s.points)-1] }

// LastPrice returns the price of the chronologically last observation.
func (s *PriceSeries) LastPrice() Money { return s.Last().Price }

// NextTradingDay returns the first trading day on or after 'on'.
// It returns ok=false when the series ends before 'on'.
func (s *PriceSeries) NextTradingDay(on Date) (Date, bool) {
	i, _ := slices.BinarySearchFunc(s.points, on, func(p PricePoint, d Date) int {
		return compareDates(p.Date, d)
	})
	if i >= len(s.points) {
		return Date{}, false
	}
	return s.points[i].Date, true
}

// ResamplePeriodEnd reduces the series to one observation per calendar
// period of the given granularity: for each period, the last observation on
// or before the period's end. The returned points keep the trading day of
// that last observation, so every resampled date remains a member of the
// trading-day set; calendar periods without any observation yield no point.
func (s *PriceSeries) ResamplePeriodEnd(f Frequency) []PricePoint {
	var out []PricePoint
	for _, p := range s.points {
		end := p.Date.EndOf(f)
		if len(out) > 0 && out[len(out)-1].Date.EndOf(f) == end {
			// Same period: keep only the latest observation.
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}
