package fifopnl

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// DecodeTrades reads an ordered trade table from CSV data. The table must
// carry a header with the Contract, Price and Quantity columns, in any
// order; surrounding whitespace in contract names is trimmed. Any malformed
// row rejects the whole table with a row-numbered error: the decoding layer
// applies the same reject-the-run policy as the engine, nothing is silently
// skipped.
func DecodeTrades(r io.Reader, currency string) ([]Trade, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty trade table")
	}
	if err != nil {
		return nil, fmt.Errorf("could not read trade table header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Contract", "Price", "Quantity"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("trade table missing required column %q", required)
		}
	}

	var trades []Trade
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read trade table row %d: %w", row, err)
		}

		contract := strings.TrimSpace(record[col["Contract"]])
		if contract == "" {
			return nil, fmt.Errorf("trade table row %d: empty contract name", row)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(record[col["Price"]]))
		if err != nil {
			return nil, fmt.Errorf("trade table row %d: invalid price %q: %w", row, record[col["Price"]], err)
		}
		quantity, err := decimal.NewFromString(strings.TrimSpace(record[col["Quantity"]]))
		if err != nil {
			return nil, fmt.Errorf("trade table row %d: invalid quantity %q: %w", row, record[col["Quantity"]], err)
		}
		if quantity.IsZero() {
			return nil, fmt.Errorf("trade table row %d: zero quantity for contract %q", row, contract)
		}

		trades = append(trades, NewTrade(contract, M(price, currency), Q(quantity)))
	}
	return trades, nil
}
