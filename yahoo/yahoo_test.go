package yahoo

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	simulator "github.com/rbeaulieu03/portfolio-simulator"
)

// Timestamps for 2020-01-02, 2020-01-03 and 2020-01-06, midnight UTC.
const chartPayload = `{
  "chart": {
    "result": [
      {
        "meta": {"currency": "USD", "regularMarketPrice": 301.5},
        "timestamp": [1577923200, 1578009600, 1578268800],
        "indicators": {
          "quote": [{"close": [300.1, 297.4, null]}],
          "adjclose": [{"adjclose": [290.5, 287.9, null]}]
        }
      }
    ],
    "error": null
  }
}`

const errorPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func newTestClient(t *testing.T, payload string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return &Client{http: srv.Client(), base: srv.URL}
}

func TestClient_Fetch(t *testing.T) {
	c := newTestClient(t, chartPayload)

	series, err := c.Fetch("SPY", simulator.NewDate(2020, 1, 1), simulator.NewDate(2020, 1, 7))
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// Three timestamps, one null adjclose: two usable observations.
	if series.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", series.Len())
	}
	if got := series.First().Date; got != simulator.NewDate(2020, 1, 2) {
		t.Errorf("First().Date = %v, want 2020-01-02", got)
	}
	// Adjusted close wins over the plain close.
	want := simulator.M(290.5, "USD")
	if got, _ := series.Price(simulator.NewDate(2020, 1, 2)); !got.Equal(want) {
		t.Errorf("Price(2020-01-02) = %v, want %v", got, want)
	}
	if got := series.LastPrice().Currency(); got != "USD" {
		t.Errorf("currency = %q, want USD", got)
	}
}

func TestClient_Fetch_apiError(t *testing.T) {
	c := newTestClient(t, errorPayload)

	_, err := c.Fetch("NOPE", simulator.NewDate(2020, 1, 1), simulator.NewDate(2020, 1, 7))
	if err == nil {
		t.Fatal("expected error for delisted symbol")
	}
}

func TestClient_Fetch_noUsableQuotes(t *testing.T) {
	const empty = `{"chart":{"result":[{"meta":{"currency":"USD"},"timestamp":[],"indicators":{"quote":[{"close":[]}]}}],"error":null}}`
	c := newTestClient(t, empty)

	_, err := c.Fetch("SPY", simulator.NewDate(2020, 1, 1), simulator.NewDate(2020, 1, 7))
	if !errors.Is(err, simulator.ErrEmptyPriceSeries) {
		t.Errorf("error = %v, want ErrEmptyPriceSeries", err)
	}
}
