package fifopnl

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// FetchMark pulls the latest quote for one feed: it GETs the provider JSON
// endpoint and extracts the price with the feed's jsonpath expression.
func FetchMark(client *http.Client, f Feed) (float64, error) {
	var jobj any
	if err := jwget(client, f.URL, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", f.Contract, err)
	}

	jval, err := jsonpath.Get(f.Path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", f.Contract, f.Path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", f.Contract, f.Path, "not a float", jval)
	}
	if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
		return math.NaN(), fmt.Errorf("feed %q returned invalid price %v", f.Contract, val)
	}
	return val, nil
}

// UpdateMarks refreshes the mark table from all configured feeds. Feeds that
// fail leave their previous mark untouched; all failures are joined into the
// returned error.
func (mf *MarksFile) UpdateMarks(client *http.Client) error {
	var errs []error
	for _, f := range mf.Feeds {
		price, err := FetchMark(client, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if mf.Marks == nil {
			mf.Marks = map[string]float64{}
		}
		mf.Marks[f.Contract] = price
	}
	return errors.Join(errs...)
}
