package fifopnl

import (
	"fmt"
	"strings"
)

// Trade is one already-parsed, already-typed input record. A positive
// quantity is a buy, a negative quantity is a sell. A zero quantity is
// invalid input.
type Trade struct {
	Contract string
	Price    Money
	Quantity Quantity
}

// NewTrade builds a trade, trimming surrounding whitespace from the
// contract name.
func NewTrade(contract string, price Money, quantity Quantity) Trade {
	return Trade{Contract: strings.TrimSpace(contract), Price: price, Quantity: quantity}
}

func (t Trade) String() string {
	return fmt.Sprintf("%s %s @ %s", t.Contract, t.Quantity, t.Price)
}

// Validate checks the trade against the engine's preconditions: a non-empty
// contract name (after trimming) and a non-zero quantity. Price finiteness
// is guaranteed by the decimal representation; the decoding layer rejects
// non-numeric input before it ever becomes a Trade.
func (t Trade) Validate() error {
	if strings.TrimSpace(t.Contract) == "" {
		return fmt.Errorf("empty contract name")
	}
	if t.Quantity.IsZero() {
		return fmt.Errorf("zero quantity for contract %q", t.Contract)
	}
	return nil
}

// InvalidTradeError rejects a whole run because of one malformed trade
// record. The engine never partially applies a rejected run.
type InvalidTradeError struct {
	Row   int // zero-based index in the input sequence
	Trade Trade
	Err   error
}

func (e *InvalidTradeError) Error() string {
	return fmt.Sprintf("invalid trade at row %d: %v", e.Row, e.Err)
}

func (e *InvalidTradeError) Unwrap() error { return e.Err }
