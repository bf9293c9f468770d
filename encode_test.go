package fifopnl

import (
	"strings"
	"testing"
)

func TestDecodeTrades(t *testing.T) {
	csv := `Contract,Price,Quantity
 May 3% ,60.25,10
June 3%,58.80,-4
`
	trades, err := DecodeTrades(strings.NewReader(csv), "USD")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}
	if trades[0].Contract != "May 3%" {
		t.Errorf("contract = %q, want whitespace trimmed %q", trades[0].Contract, "May 3%")
	}
	if !trades[0].Price.Equal(M(60.25, "USD")) || !trades[0].Quantity.Equal(Q(10)) {
		t.Errorf("trade 0 = %v, want 10 @ 60.25", trades[0])
	}
	if !trades[1].Quantity.Equal(Q(-4)) {
		t.Errorf("trade 1 quantity = %s, want -4", trades[1].Quantity)
	}
}

func TestDecodeTrades_ColumnsInAnyOrder(t *testing.T) {
	csv := `Quantity,Contract,Price
5,X,100
`
	trades, err := DecodeTrades(strings.NewReader(csv), "USD")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if trades[0].Contract != "X" || !trades[0].Quantity.Equal(Q(5)) {
		t.Errorf("trade = %v, want X 5 @ 100", trades[0])
	}
}

func TestDecodeTrades_MissingColumn(t *testing.T) {
	csv := `Contract,Price
X,100
`
	if _, err := DecodeTrades(strings.NewReader(csv), "USD"); err == nil {
		t.Error("DecodeTrades() accepted a table without a Quantity column")
	}
}

func TestDecodeTrades_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"non-numeric price", "Contract,Price,Quantity\nX,abc,10\n"},
		{"non-numeric quantity", "Contract,Price,Quantity\nX,100,ten\n"},
		{"zero quantity", "Contract,Price,Quantity\nX,100,0\n"},
		{"empty contract", "Contract,Price,Quantity\n  ,100,10\n"},
		{"empty table", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeTrades(strings.NewReader(tc.csv), "USD"); err == nil {
				t.Errorf("DecodeTrades() accepted %s", tc.name)
			}
		})
	}
}

func TestDecodeTrades_RoundTripsThroughEngine(t *testing.T) {
	csv := `Contract,Price,Quantity
X,100,10
X,105,-4
X,98,-10
`
	trades, err := DecodeTrades(strings.NewReader(csv), "USD")
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	r := mustProcess(t, trades)
	if !r.Realized.Equal(M(8, "USD")) {
		t.Errorf("realized = %s, want +8", r.Realized)
	}
}
