package fifopnl

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// MarkPrices maps a contract name to its end-of-period mark price. The
// mapping may be partial or empty; a surviving lot without a mark simply
// contributes zero unrealized PnL and is flagged as unmarked.
type MarkPrices map[string]Money

// Feed describes a remote quote source for one contract: a provider JSON
// endpoint and the jsonpath expression locating the price inside the
// response.
type Feed struct {
	Contract string `yaml:"contract"`
	URL      string `yaml:"url"`
	Path     string `yaml:"path"`
}

// MarksFile is the on-disk YAML document holding mark prices and, optionally,
// the feeds used to refresh them:
//
//	currency: USD
//	marks:
//	  May 3%: 60.25
//	  June 3%: 58.80
//	feeds:
//	  - contract: May 3%
//	    url: https://example.com/quote/may3
//	    path: $.data[-1:][1]
type MarksFile struct {
	Currency string             `yaml:"currency,omitempty"`
	Marks    map[string]float64 `yaml:"marks"`
	Feeds    []Feed             `yaml:"feeds,omitempty"`
}

// DecodeMarks decodes and validates a marks YAML document. Every mark price
// must be a finite positive number.
func DecodeMarks(r io.Reader) (*MarksFile, error) {
	var mf MarksFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		if err == io.EOF {
			return &MarksFile{Marks: map[string]float64{}}, nil
		}
		return nil, fmt.Errorf("could not decode marks file: %w", err)
	}
	if mf.Marks == nil {
		mf.Marks = map[string]float64{}
	}
	for contract, price := range mf.Marks {
		if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
			return nil, fmt.Errorf("invalid mark price %v for contract %q: must be a finite positive number", price, contract)
		}
	}
	return &mf, nil
}

// EncodeMarks writes the marks document back in YAML form.
func EncodeMarks(w io.Writer, mf *MarksFile) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(mf); err != nil {
		return fmt.Errorf("could not encode marks file: %w", err)
	}
	return nil
}

// Prices converts the raw mark table to the MarkPrices mapping consumed by
// the valuation pass, denominated in currency (the file's own currency wins
// when set).
func (mf *MarksFile) Prices(currency string) MarkPrices {
	if mf.Currency != "" {
		currency = mf.Currency
	}
	marks := make(MarkPrices, len(mf.Marks))
	for contract, price := range mf.Marks {
		marks[contract] = M(price, currency)
	}
	return marks
}
