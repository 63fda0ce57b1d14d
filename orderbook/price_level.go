package orderbook

import "crimson/rbtree"

// PriceLevel is one price point on a book side: a FIFO queue of
// resting orders plus the embedded tree node that keys the level into
// the side's price index.
type PriceLevel struct {
	Price      int64
	TotalQty   int64
	OrderCount int
	head       *Order
	tail       *Order
	node       rbtree.Node[*PriceLevel]
}

// init prepares a (possibly recycled) level record for linking.
func (p *PriceLevel) init(price int64) {
	p.Price = price
	p.TotalQty = 0
	p.OrderCount = 0
	p.head = nil
	p.tail = nil
	p.node.Init()
	p.node.Item = p
}

// Front returns the oldest resting order at this level.
func (p *PriceLevel) Front() *Order { return p.head }

// Empty reports whether no orders rest at this level.
func (p *PriceLevel) Empty() bool { return p.head == nil }

func (p *PriceLevel) Enqueue(o *Order) {
	if p.head == nil {
		p.head = o
		p.tail = o
	} else {
		p.tail.next = o
		o.prev = p.tail
		p.tail = o
	}
	p.TotalQty += o.Qty
	p.OrderCount++
}

func (p *PriceLevel) unlink(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.next = nil
	o.prev = nil
	p.TotalQty -= o.Qty
	p.OrderCount--
	if p.TotalQty < 0 {
		p.TotalQty = 0
	}
}
