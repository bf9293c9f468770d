package fifopnl

import "fmt"

// Result is the outcome of one matching run: the realized PnL total, the
// full trade history, and the final position book ready for valuation.
type Result struct {
	Realized Money
	History  History
	Book     *Book
}

// MarshalJSON implements the json.Marshaler interface.
func (r *Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("realizedPnl", r.Realized)
	w.Append("tradeHistory", r.History)
	return w.MarshalJSON()
}

// ProcessTrades consumes an ordered trade sequence and returns the matching
// result. It is a pure function of its input: given the identical sequence
// it produces the identical result.
//
// Every trade is validated before any of them is applied, so a rejected run
// never leaves a partially mutated book. Trades are processed strictly in
// input order, even across contracts; that order defines FIFO lot age.
func ProcessTrades(trades []Trade, currency string) (*Result, error) {
	for i, t := range trades {
		if err := t.Validate(); err != nil {
			return nil, &InvalidTradeError{Row: i, Trade: t, Err: err}
		}
	}

	r := &Result{
		Realized: M(0, currency),
		Book:     NewBook(),
	}
	for _, t := range trades {
		r.apply(NewTrade(t.Contract, t.Price, t.Quantity))
	}
	return r, nil
}

// apply matches one trade against the book, oldest lot first, and appends
// the resulting events.
func (r *Result) apply(t Trade) {
	if t.Quantity.IsPositive() {
		r.match(t, t.Quantity, Short, CoverEvent, BuyEvent)
	} else {
		r.match(t, t.Quantity.Neg(), Long, SellEvent, ShortEvent)
	}
}

// match drains the opposing queue front-first, realizing PnL per matched
// slice, then opens a lot of the trade's own sign for any remainder.
// against is the side being closed; closing/opening classify the emitted
// events.
func (r *Result) match(t Trade, remaining Quantity, against Side, closing, opening EventType) {
	for remaining.IsPositive() {
		entry, ok := r.Book.Front(against, t.Contract)
		if !ok {
			break
		}

		matched := entry.Quantity
		if matched.GreaterThan(remaining) {
			matched = remaining
		}
		pnl := closePnL(against, entry.Price, t.Price, matched)

		verb := "Matched"
		if closing == CoverEvent {
			verb = "Covered"
		}
		r.History = append(r.History, Event{
			Type:     closing,
			Contract: t.Contract,
			Price:    t.Price,
			Quantity: matched,
			PnL:      pnl,
			Note:     closeNote(verb, matched, entry.Price),
		})
		r.Realized = r.Realized.Add(pnl)

		if entry.Quantity.LessThanOrEqual(remaining) {
			r.Book.PopFront(against, t.Contract)
		} else {
			r.Book.ReduceFront(against, t.Contract, matched)
		}
		remaining = remaining.Sub(matched)
	}

	if remaining.IsPositive() {
		side := Long
		if opening == ShortEvent {
			side = Short
		}
		r.Book.Push(side, t.Contract, Lot{Price: t.Price, Quantity: remaining})

		note := openNote(t.Contract, remaining, t.Price)
		if opening == ShortEvent {
			note = fmt.Sprintf("Short %s", openNote(t.Contract, remaining, t.Price))
		}
		r.History = append(r.History, Event{
			Type:     opening,
			Contract: t.Contract,
			Price:    t.Price,
			Quantity: remaining,
			PnL:      M(0, r.Realized.Currency()),
			Note:     note,
		})
	}
}

// closePnL realizes the gain for one matched slice. Closing a long lot
// gains when the exit price exceeds the entry price; closing a short lot
// gains when the exit price falls below it. Both reduce to
// (sell price - buy price) * quantity.
func closePnL(against Side, entry, exit Money, qty Quantity) Money {
	if against == Long {
		return exit.Sub(entry).Mul(qty)
	}
	return entry.Sub(exit).Mul(qty)
}
