package orderbook

type Side int
type OrderType int
type Status int

const (
	Bid Side = iota
	Ask
)

const (
	Limit OrderType = iota
	Market
	FOK
	IOC
	PostOnly
)

const (
	Active Status = iota
	Inactive
)

// Order is a single resting or incoming order. Resting orders are
// linked into their price level's FIFO queue.
type Order struct {
	ID     uint64
	Price  int64
	Qty    int64
	Filled int64
	SeqID  uint64
	Side   Side
	Type   OrderType
	Status Status
	next   *Order
	prev   *Order
}

// Reset clears the order for reuse from the pool.
func (o *Order) Reset() { *o = Order{} }
