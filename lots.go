package fifopnl

import "iter"

// Lot is a quantity of a contract acquired (or sold short) at a specific
// price, not yet fully offset by an opposing trade.
// Its Quantity is always strictly positive.
type Lot struct {
	Price    Money
	Quantity Quantity
}

// CostBasis returns price times quantity for the lot.
func (l Lot) CostBasis() Money { return l.Price.Mul(l.Quantity) }

// lotQueue is an ordered queue of open lots for one contract and one side.
// Lots are kept in strict chronological arrival order, oldest at the front.
// The queue only exposes push-to-back, peek-front, reduce-front and
// pop-front, so out-of-order access is impossible by construction.
type lotQueue struct {
	lots []Lot
	head int
}

// push appends a lot at the back of the queue.
// Pushing a non-positive quantity is a programming error.
func (q *lotQueue) push(l Lot) {
	if !l.Quantity.IsPositive() {
		panic("lotQueue: push of non-positive lot quantity " + l.Quantity.String())
	}
	q.lots = append(q.lots, l)
}

// front returns the oldest open lot without removing it.
func (q *lotQueue) front() (Lot, bool) {
	if q.head >= len(q.lots) {
		return Lot{}, false
	}
	return q.lots[q.head], true
}

// popFront removes and returns the oldest open lot.
func (q *lotQueue) popFront() (Lot, bool) {
	if q.head >= len(q.lots) {
		return Lot{}, false
	}
	l := q.lots[q.head]
	q.lots[q.head] = Lot{} // release for GC
	q.head++
	if q.head == len(q.lots) {
		q.lots = q.lots[:0]
		q.head = 0
	}
	return l, true
}

// reduceFront shrinks the oldest lot by amount. A lot reduced to exactly
// zero is popped, never retained as a zero-quantity entry. Reducing by more
// than the front quantity is a programming error: the caller must pop the
// lot and carry the remainder instead.
func (q *lotQueue) reduceFront(amount Quantity) {
	front, ok := q.front()
	if !ok {
		panic("lotQueue: reduceFront on empty queue")
	}
	if amount.GreaterThan(front.Quantity) {
		panic("lotQueue: reduceFront beyond front lot quantity")
	}
	rest := front.Quantity.Sub(amount)
	if rest.IsZero() {
		q.popFront()
		return
	}
	q.lots[q.head].Quantity = rest
}

// len returns the number of open lots.
func (q *lotQueue) len() int { return len(q.lots) - q.head }

// all iterates over the open lots, oldest first.
func (q *lotQueue) all() iter.Seq[Lot] {
	return func(yield func(Lot) bool) {
		for i := q.head; i < len(q.lots); i++ {
			if !yield(q.lots[i]) {
				return
			}
		}
	}
}
