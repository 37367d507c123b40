package simulator

import (
	"testing"
	"time"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// weekdaySeries builds a series with one observation per weekday between
// from and to (inclusive), at the given constant price.
func weekdaySeries(t *testing.T, from, to Date, price Money) *PriceSeries {
	t.Helper()
	var points []PricePoint
	for d := from; !d.After(to); d = d.Add(1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		points = append(points, PricePoint{Date: d, Price: price})
	}
	s, err := NewPriceSeries(points)
	if err != nil {
		t.Fatalf("weekdaySeries: %v", err)
	}
	return s
}

// dailySeries builds a series with one observation per calendar day, prices
// taken from the given slice.
func dailySeries(t *testing.T, from Date, prices []float64) *PriceSeries {
	t.Helper()
	points := make([]PricePoint, len(prices))
	for i, p := range prices {
		points[i] = PricePoint{Date: from.Add(i), Price: USD(p)}
	}
	s, err := NewPriceSeries(points)
	if err != nil {
		t.Fatalf("dailySeries: %v", err)
	}
	return s
}
