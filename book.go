package fifopnl

import "iter"

// Side distinguishes long inventory (open buys awaiting a sell) from short
// inventory (open sells awaiting a buy).
type Side int

const (
	Long Side = iota
	Short
)

func (s Side) String() string {
	switch s {
	case Long:
		return "LONG"
	case Short:
		return "SHORT"
	default:
		return "unknown"
	}
}

// Book holds, for each contract, the ordered queues of open long lots and
// open short lots. Between trades at most one of the two queues is non-empty
// for any contract: every incoming trade first drains the opposing queue
// before opening inventory of its own sign.
//
// A Book is created empty at the start of a run, mutated trade-by-trade by
// the matching engine, and read by the valuation pass at the end. It is
// never persisted.
type Book struct {
	longs  map[string]*lotQueue
	shorts map[string]*lotQueue

	// contracts in first-seen order, for deterministic reporting.
	order []string
	seen  map[string]struct{}
}

// NewBook returns an empty position book.
func NewBook() *Book {
	return &Book{
		longs:  make(map[string]*lotQueue),
		shorts: make(map[string]*lotQueue),
		seen:   make(map[string]struct{}),
	}
}

func (b *Book) queue(side Side, contract string) *lotQueue {
	m := b.longs
	if side == Short {
		m = b.shorts
	}
	q, ok := m[contract]
	if !ok {
		q = &lotQueue{}
		m[contract] = q
		if _, dup := b.seen[contract]; !dup {
			b.seen[contract] = struct{}{}
			b.order = append(b.order, contract)
		}
	}
	return q
}

// Push appends a lot at the back of a contract's queue for the given side.
func (b *Book) Push(side Side, contract string, l Lot) {
	b.queue(side, contract).push(l)
}

// Front returns the oldest open lot of a contract on the given side.
func (b *Book) Front(side Side, contract string) (Lot, bool) {
	return b.queue(side, contract).front()
}

// PopFront removes and returns the oldest open lot of a contract on the
// given side.
func (b *Book) PopFront(side Side, contract string) (Lot, bool) {
	return b.queue(side, contract).popFront()
}

// ReduceFront shrinks the oldest open lot by amount; exact exhaustion pops
// the lot.
func (b *Book) ReduceFront(side Side, contract string, amount Quantity) {
	b.queue(side, contract).reduceFront(amount)
}

// Per-side conveniences.

func (b *Book) PushLong(contract string, l Lot)  { b.Push(Long, contract, l) }
func (b *Book) PushShort(contract string, l Lot) { b.Push(Short, contract, l) }

func (b *Book) FrontLong(contract string) (Lot, bool)  { return b.Front(Long, contract) }
func (b *Book) FrontShort(contract string) (Lot, bool) { return b.Front(Short, contract) }

func (b *Book) PopFrontLong(contract string) (Lot, bool)  { return b.PopFront(Long, contract) }
func (b *Book) PopFrontShort(contract string) (Lot, bool) { return b.PopFront(Short, contract) }

func (b *Book) ReduceFrontLong(contract string, amount Quantity) {
	b.ReduceFront(Long, contract, amount)
}
func (b *Book) ReduceFrontShort(contract string, amount Quantity) {
	b.ReduceFront(Short, contract, amount)
}

// Open returns the number of open lots of a contract on the given side.
func (b *Book) Open(side Side, contract string) int {
	m := b.longs
	if side == Short {
		m = b.shorts
	}
	if q, ok := m[contract]; ok {
		return q.len()
	}
	return 0
}

// Contracts iterates over all contracts ever touched by the run, in
// first-seen order. Contracts whose inventory was fully closed still appear;
// they simply have no open lots left.
func (b *Book) Contracts() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range b.order {
			if !yield(c) {
				return
			}
		}
	}
}

// Lots iterates over the open lots of a contract on the given side, oldest
// first.
func (b *Book) Lots(side Side, contract string) iter.Seq[Lot] {
	m := b.longs
	if side == Short {
		m = b.shorts
	}
	if q, ok := m[contract]; ok {
		return q.all()
	}
	return func(yield func(Lot) bool) {}
}

// IsFlat reports whether the book holds no open lot at all.
func (b *Book) IsFlat() bool {
	for _, q := range b.longs {
		if q.len() > 0 {
			return false
		}
	}
	for _, q := range b.shorts {
		if q.len() > 0 {
			return false
		}
	}
	return true
}

// Position returns the net signed quantity of a contract: total open long
// quantity minus total open short quantity.
func (b *Book) Position(contract string) Quantity {
	var position Quantity
	for l := range b.Lots(Long, contract) {
		position = position.Add(l.Quantity)
	}
	for l := range b.Lots(Short, contract) {
		position = position.Sub(l.Quantity)
	}
	return position
}
