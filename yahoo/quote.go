package yahoo

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// Latest returns the most recent intraday market price for symbol.
// It parses the one-day chart payload loosely with a jsonpath, because only
// a single scalar is needed and the intraday payload must not go through the
// daily disk cache.
func (c *Client) Latest(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1m&range=1d", c.base, symbol)
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}
