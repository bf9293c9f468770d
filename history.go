package fifopnl

import "fmt"

// EventType classifies one slice of an input trade in the trade history.
type EventType int

const (
	// BuyEvent is trade quantity that opened a new long lot.
	BuyEvent EventType = iota
	// SellEvent is trade quantity that closed an existing long lot.
	SellEvent
	// ShortEvent is trade quantity that opened a new short lot.
	ShortEvent
	// CoverEvent is trade quantity that closed an existing short lot.
	CoverEvent
)

func (t EventType) String() string {
	switch t {
	case BuyEvent:
		return "BUY"
	case SellEvent:
		return "SELL"
	case ShortEvent:
		return "SHORT"
	case CoverEvent:
		return "COVER"
	default:
		return "unknown"
	}
}

// Opens reports whether events of this type open new inventory. Opening
// events carry zero PnL; closing events carry the realized gain or loss for
// their matched slice.
func (t EventType) Opens() bool { return t == BuyEvent || t == ShortEvent }

// Event is one row of the append-only trade history. A single input trade
// emits one event per lot it closes, plus one event for any remainder that
// opened new inventory; the Quantity fields of those events sum to the
// trade's absolute quantity.
type Event struct {
	Type     EventType
	Contract string
	Price    Money    // the incoming trade's price
	Quantity Quantity // the matched (or opened) slice, strictly positive
	PnL      Money    // realized PnL for the slice, zero for opening events
	Note     string
}

// MarshalJSON implements the json.Marshaler interface.
func (e Event) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", e.Type.String())
	w.Append("contract", e.Contract)
	w.Append("price", e.Price)
	w.Append("quantity", e.Quantity)
	w.Append("pnl", e.PnL)
	w.Optional("note", e.Note)
	return w.MarshalJSON()
}

// History is the ordered log of events emitted by one matching run, in
// exactly the order they were produced.
type History []Event

// Realized sums the PnL of all closing events. Opening events never
// contribute.
func (h History) Realized(currency string) Money {
	total := M(0, currency)
	for _, e := range h {
		if e.Type.Opens() {
			continue
		}
		total = total.Add(e.PnL)
	}
	return total
}

// openNote describes newly opened inventory, e.g. "May 3% 10 @ $60.25".
func openNote(contract string, qty Quantity, price Money) string {
	return fmt.Sprintf("%s %s @ %s", contract, qty, price)
}

// closeNote describes a matched slice, e.g. "Matched 10 @ $60.25".
func closeNote(verb string, qty Quantity, entry Money) string {
	return fmt.Sprintf("%s %s @ %s", verb, qty, entry)
}
