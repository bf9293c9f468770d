package fifopnl

import "testing"

func TestValuePositions_MarkToMarketScenario(t *testing.T) {
	// Continuing the matching scenario: one short lot (98, 4) marked at 90
	// is worth (98-90)*4 = +32 unrealized.
	r := mustProcess(t, []Trade{
		{Contract: "X", Price: usd(100), Quantity: Q(10)},
		{Contract: "X", Price: usd(105), Quantity: Q(-4)},
		{Contract: "X", Price: usd(98), Quantity: Q(-10)},
	})

	v := ValuePositions(r.Book, MarkPrices{"X": usd(90)}, "USD")

	if !v.Unrealized.Equal(usd(32)) {
		t.Errorf("unrealized = %s, want +32", v.Unrealized)
	}
	if len(v.Positions) != 1 {
		t.Fatalf("got %d snapshot rows, want 1", len(v.Positions))
	}
	row := v.Positions[0]
	if row.Side != Short || !row.Marked {
		t.Errorf("row = %+v, want marked SHORT row", row)
	}
	if !row.CostBasis.Equal(usd(392)) {
		t.Errorf("cost basis = %s, want 98*4 = 392", row.CostBasis)
	}
	if !row.MarketValue.Equal(usd(360)) {
		t.Errorf("market value = %s, want 90*4 = 360", row.MarketValue)
	}
}

func TestValuePositions_LongAndShortSigns(t *testing.T) {
	b := NewBook()
	b.PushLong("L", Lot{Price: usd(100), Quantity: Q(2)})
	b.PushShort("S", Lot{Price: usd(100), Quantity: Q(2)})

	v := ValuePositions(b, MarkPrices{"L": usd(110), "S": usd(110)}, "USD")

	// Same mark move, mirrored PnL: long gains +20, short loses -20.
	for _, row := range v.Positions {
		switch row.Contract {
		case "L":
			if !row.Unrealized.Equal(usd(20)) {
				t.Errorf("long unrealized = %s, want +20", row.Unrealized)
			}
		case "S":
			if !row.Unrealized.Equal(usd(-20)) {
				t.Errorf("short unrealized = %s, want -20", row.Unrealized)
			}
		}
	}
	if !v.Unrealized.IsZero() {
		t.Errorf("total unrealized = %s, want 0", v.Unrealized)
	}
}

func TestValuePositions_UnmarkedLotIsFlaggedNotSilent(t *testing.T) {
	b := NewBook()
	b.PushLong("X", Lot{Price: usd(100), Quantity: Q(5)})
	b.PushLong("Y", Lot{Price: usd(50), Quantity: Q(1)})

	v := ValuePositions(b, MarkPrices{"X": usd(101)}, "USD")

	if !v.Unrealized.Equal(usd(5)) {
		t.Errorf("unrealized = %s, want +5 (unmarked lot contributes zero)", v.Unrealized)
	}
	unmarked := v.Unmarked()
	if len(unmarked) != 1 || unmarked[0] != "Y" {
		t.Errorf("Unmarked() = %v, want [Y]", unmarked)
	}
	for _, row := range v.Positions {
		if row.Contract == "Y" && row.Marked {
			t.Error("row for Y reported marked without a mark price")
		}
	}
}

func TestValuePositions_EmptyBook(t *testing.T) {
	v := ValuePositions(NewBook(), MarkPrices{"X": usd(100)}, "USD")
	if len(v.Positions) != 0 {
		t.Errorf("got %d rows for an empty book, want 0", len(v.Positions))
	}
	if !v.Unrealized.IsZero() {
		t.Errorf("unrealized = %s, want 0", v.Unrealized)
	}
}

func TestValuePositions_OneRowPerSurvivingLot(t *testing.T) {
	r := mustProcess(t, []Trade{
		{Contract: "X", Price: usd(100), Quantity: Q(10)},
		{Contract: "X", Price: usd(102), Quantity: Q(5)},
	})
	v := ValuePositions(r.Book, nil, "USD")
	if len(v.Positions) != 2 {
		t.Fatalf("got %d rows, want one per surviving lot (2)", len(v.Positions))
	}
	if !v.Positions[0].Price.Equal(usd(100)) || !v.Positions[1].Price.Equal(usd(102)) {
		t.Errorf("rows out of lot-age order: %+v", v.Positions)
	}
}

func TestValuePositions_Idempotent(t *testing.T) {
	r := mustProcess(t, []Trade{
		{Contract: "X", Price: usd(100), Quantity: Q(10)},
		{Contract: "X", Price: usd(98), Quantity: Q(-12)},
	})
	marks := MarkPrices{"X": usd(95)}

	first := ValuePositions(r.Book, marks, "USD")
	second := ValuePositions(r.Book, marks, "USD")

	if !first.Unrealized.Equal(second.Unrealized) {
		t.Errorf("unrealized differs across calls: %s vs %s", first.Unrealized, second.Unrealized)
	}
	if len(first.Positions) != len(second.Positions) {
		t.Fatalf("row count differs across calls: %d vs %d", len(first.Positions), len(second.Positions))
	}
	for i := range first.Positions {
		a, b := first.Positions[i], second.Positions[i]
		if a.Contract != b.Contract || a.Side != b.Side || a.Marked != b.Marked ||
			!a.Quantity.Equal(b.Quantity) || !a.Unrealized.Equal(b.Unrealized) {
			t.Errorf("row %d differs: %+v vs %+v", i, a, b)
		}
	}
}
