package orderbook

import (
	"sync/atomic"

	"crimson/infra/memory"
)

const retireRingSize = 1 << 12

// OrderBook keeps both sides of the book. One writer at a time.
type OrderBook struct {
	Bids    *LevelIndex
	Asks    *LevelIndex
	LastSeq atomic.Uint64

	orders  *memory.Pool[Order]
	retired *memory.RetireRing[Order]
}

// NewOrderBook creates an empty book with its own record pools.
func NewOrderBook() *OrderBook {
	levels := memory.NewPool(func() *PriceLevel { return &PriceLevel{} })
	return &OrderBook{
		Bids:    NewLevelIndex(levels),
		Asks:    NewLevelIndex(levels),
		orders:  memory.NewPool(func() *Order { return &Order{} }),
		retired: memory.NewRetireRing[Order](retireRingSize),
	}
}

// PlaceOrder matches an incoming order against the opposite side and
// rests any remainder according to its type.
func (b *OrderBook) PlaceOrder(
	side Side,
	otype OrderType,
	price int64,
	qty int64,
	userID uint64,
	seq uint64,
) *Order {
	o := b.orders.Get()
	o.Reset()
	o.ID = userID
	o.Side = side
	o.Type = otype
	o.Price = price
	o.Qty = qty
	o.SeqID = seq
	o.Status = Active
	b.LastSeq.Store(seq)

	if o.Type != PostOnly {
		o.Filled = b.match(o)
	}

	switch o.Type {
	case Limit:
		if o.Qty > 0 {
			b.enqueue(o)
		}
	case PostOnly:
		// Post-only never takes liquidity: reject instead of
		// crossing.
		if b.crosses(o) {
			b.retire(o)
		} else {
			b.enqueue(o)
		}
	default: // IOC, FOK, Market
		if o.Qty > 0 {
			b.retire(o)
		}
	}
	return o
}

// match crosses the incoming order against the best opposite levels.
func (b *OrderBook) match(o *Order) int64 {
	filled := int64(0)
	if o.Side == Bid {
		for o.Qty > 0 {
			bestAsk := b.Asks.Min()
			if bestAsk == nil || (o.Type != Market && bestAsk.Price > o.Price) {
				break
			}
			head := bestAsk.Front()
			trade := min(o.Qty, head.Qty)
			o.Qty -= trade
			head.Qty -= trade
			bestAsk.TotalQty -= trade
			filled += trade

			if head.Qty == 0 {
				b.removeResting(bestAsk, head, Ask)
			}
		}
		return filled
	}

	for o.Qty > 0 {
		bestBid := b.Bids.Max()
		if bestBid == nil || (o.Type != Market && bestBid.Price < o.Price) {
			break
		}
		head := bestBid.Front()
		trade := min(o.Qty, head.Qty)
		o.Qty -= trade
		head.Qty -= trade
		bestBid.TotalQty -= trade
		filled += trade

		if head.Qty == 0 {
			b.removeResting(bestBid, head, Bid)
		}
	}
	return filled
}

// crosses reports whether o would trade against the opposite side.
func (b *OrderBook) crosses(o *Order) bool {
	if o.Side == Bid {
		best := b.Asks.Min()
		return best != nil && best.Price <= o.Price
	}
	best := b.Bids.Max()
	return best != nil && best.Price >= o.Price
}

func (b *OrderBook) enqueue(o *Order) {
	if o.Side == Bid {
		b.Bids.Upsert(o.Price).Enqueue(o)
	} else {
		b.Asks.Upsert(o.Price).Enqueue(o)
	}
}

// Cancel unlinks a resting order and recycles it. Returns false when
// the order is not resting on the book.
func (b *OrderBook) Cancel(o *Order) bool {
	if o == nil || o.Status != Active {
		return false
	}
	side := b.Asks
	if o.Side == Bid {
		side = b.Bids
	}
	level := side.Find(o.Price)
	if level == nil {
		return false
	}
	b.removeResting(level, o, o.Side)
	return true
}

func (b *OrderBook) removeResting(level *PriceLevel, o *Order, side Side) {
	level.unlink(o)
	if level.Empty() {
		if side == Bid {
			b.Bids.Delete(level)
		} else {
			b.Asks.Delete(level)
		}
	}
	b.retire(o)
}

func (b *OrderBook) retire(o *Order) {
	o.Status = Inactive
	if !b.retired.Enqueue(o) {
		// Ring full: recycle the backlog immediately.
		b.retired.Drain(b.orders)
		if !b.retired.Enqueue(o) {
			panic("orderbook: retire ring full after drain")
		}
	}
}

// ReleaseRetired recycles retired orders into the pool. Called by the
// writer between batches.
func (b *OrderBook) ReleaseRetired() {
	b.retired.Drain(b.orders)
}

// BestBid returns the highest bid level, or nil.
func (b *OrderBook) BestBid() *PriceLevel { return b.Bids.Max() }

// BestAsk returns the lowest ask level, or nil.
func (b *OrderBook) BestAsk() *PriceLevel { return b.Asks.Min() }

// ActiveOrders visits every resting order: bids best-first, then asks
// best-first.
func (b *OrderBook) ActiveOrders(visit func(price int64, o *Order)) {
	b.Bids.ForEachDescending(func(lvl *PriceLevel) bool {
		for n := lvl.Front(); n != nil; n = n.next {
			if n.Status == Active {
				visit(lvl.Price, n)
			}
		}
		return true
	})
	b.Asks.ForEachAscending(func(lvl *PriceLevel) bool {
		for n := lvl.Front(); n != nil; n = n.next {
			if n.Status == Active {
				visit(lvl.Price, n)
			}
		}
		return true
	})
}

func min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
