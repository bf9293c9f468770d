package fifopnl

// PositionRow is one surviving lot in the remaining-position snapshot. When
// no mark price is supplied for the lot's contract, Marked is false and the
// mark-dependent fields are zero: an unmarked lot is observable, never
// confused with a genuinely flat one.
type PositionRow struct {
	Contract  string
	Side      Side
	Price     Money
	Quantity  Quantity
	CostBasis Money

	Marked      bool
	MarkPrice   Money
	MarketValue Money
	Unrealized  Money
}

// MarshalJSON implements the json.Marshaler interface.
func (p PositionRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("contract", p.Contract)
	w.Append("side", p.Side.String())
	w.Append("price", p.Price)
	w.Append("quantity", p.Quantity)
	w.Append("costBasis", p.CostBasis)
	w.Append("marked", p.Marked)
	if p.Marked {
		w.Append("markPrice", p.MarkPrice)
		w.Append("marketValue", p.MarketValue)
		w.Append("unrealizedPnl", p.Unrealized)
	}
	return w.MarshalJSON()
}

// Valuation is the mark-to-market view of a final position book: one row
// per surviving lot plus the unrealized PnL total over all marked rows.
type Valuation struct {
	Unrealized Money
	Positions  []PositionRow
}

// MarshalJSON implements the json.Marshaler interface.
func (v *Valuation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("unrealizedPnl", v.Unrealized)
	if v.Positions == nil {
		w.Append("remainingPositions", []PositionRow{})
	} else {
		w.Append("remainingPositions", v.Positions)
	}
	return w.MarshalJSON()
}

// ValuePositions values every surviving lot of the book against the
// supplied mark prices. It is a pure function of its two inputs and never
// mutates the book; an empty book yields an empty snapshot and zero
// unrealized PnL. Rows are ordered by first appearance of the contract in
// the trade stream, long lots before short lots, oldest lot first.
func ValuePositions(book *Book, marks MarkPrices, currency string) *Valuation {
	v := &Valuation{Unrealized: M(0, currency)}

	for contract := range book.Contracts() {
		mark, marked := marks[contract]
		for _, side := range []Side{Long, Short} {
			for l := range book.Lots(side, contract) {
				row := PositionRow{
					Contract:  contract,
					Side:      side,
					Price:     l.Price,
					Quantity:  l.Quantity,
					CostBasis: l.CostBasis(),
				}
				if marked {
					row.Marked = true
					row.MarkPrice = mark
					row.MarketValue = mark.Mul(l.Quantity)
					// Long gains when the mark rises above the entry price,
					// short gains when it falls below it.
					if side == Long {
						row.Unrealized = mark.Sub(l.Price).Mul(l.Quantity)
					} else {
						row.Unrealized = l.Price.Sub(mark).Mul(l.Quantity)
					}
					v.Unrealized = v.Unrealized.Add(row.Unrealized)
				}
				v.Positions = append(v.Positions, row)
			}
		}
	}
	return v
}

// Unmarked returns the contracts of surviving lots that had no mark price,
// in row order, deduplicated.
func (v *Valuation) Unmarked() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, row := range v.Positions {
		if row.Marked {
			continue
		}
		if _, dup := seen[row.Contract]; dup {
			continue
		}
		seen[row.Contract] = struct{}{}
		out = append(out, row.Contract)
	}
	return out
}
