// Package yahoo retrieves historical prices from the Yahoo Finance chart
// API. It is the market-data collaborator of the simulator package: it hands
// back a time-ordered price series for one asset and nothing else.
package yahoo

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	simulator "github.com/rbeaulieu03/portfolio-simulator"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client talks to the Yahoo Finance v8 chart endpoint. Responses are cached
// on disk with a daily expiry, so repeated simulations over the same range
// hit the network once.
type Client struct {
	http *http.Client
	base string
}

func NewClient() *Client {
	return &Client{http: newDailyCachingClient(), base: defaultBaseURL}
}

// chartResponse is the response structure from the Yahoo Finance chart API.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Timestamp  []int64         `json:"timestamp"`
			Indicators chartIndicators `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch returns the daily price series of symbol between from and to,
// bounds included. Adjusted closes are used when the API provides them,
// plain closes otherwise; days without a quote are skipped. A range with no
// usable quote at all fails with simulator.ErrEmptyPriceSeries.
func (c *Client) Fetch(symbol string, from, to simulator.Date) (*simulator.PriceSeries, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&events=div%%2Csplit&period1=%d&period2=%d",
		c.base, url.PathEscape(symbol), from.Unix(), to.Add(1).Unix())

	var chart chartResponse
	if err := jwget(c.http, addr, &chart); err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}
	if e := chart.Chart.Error; e != nil {
		return nil, fmt.Errorf("fetching %q: %s (%s)", symbol, e.Description, e.Code)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("fetching %q: %w", symbol, simulator.ErrEmptyPriceSeries)
	}

	result := chart.Chart.Result[0]
	closes := closingPrices(result.Indicators)
	currency := result.Meta.Currency

	var points []simulator.PricePoint
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil || *closes[i] <= 0 {
			continue
		}
		on := simulator.NewDate(time.Unix(ts, 0).UTC().Date())
		points = append(points, simulator.PricePoint{
			Date:  on,
			Price: simulator.M(*closes[i], currency),
		})
	}
	series, err := simulator.NewPriceSeries(points)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", symbol, err)
	}
	return series, nil
}

type chartIndicators struct {
	Quote []struct {
		Close []*float64 `json:"close"`
	} `json:"quote"`
	AdjClose []struct {
		AdjClose []*float64 `json:"adjclose"`
	} `json:"adjclose"`
}

// closingPrices prefers the adjusted close when the API returns one.
func closingPrices(indicators chartIndicators) []*float64 {
	if len(indicators.AdjClose) > 0 && len(indicators.AdjClose[0].AdjClose) > 0 {
		return indicators.AdjClose[0].AdjClose
	}
	log.Println("warning: adjusted close not available, using close instead")
	if len(indicators.Quote) == 0 {
		return nil
	}
	return indicators.Quote[0].Close
}
