package orderbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderRests(t *testing.T) {
	b := NewOrderBook()

	o := b.PlaceOrder(Bid, Limit, 100, 10, 1, 1)
	require.NotNil(t, o)
	assert.Equal(t, int64(0), o.Filled)

	best := b.BestBid()
	require.NotNil(t, best)
	assert.Equal(t, int64(100), best.Price)
	assert.Equal(t, int64(10), best.TotalQty)
	assert.Nil(t, b.BestAsk())
}

func TestMatchFullFill(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 100, 10, 1, 1)
	o := b.PlaceOrder(Bid, Limit, 100, 10, 2, 2)

	assert.Equal(t, int64(10), o.Filled)
	assert.Equal(t, int64(0), o.Qty)
	assert.Nil(t, b.BestAsk(), "filled level must be removed")
	assert.Nil(t, b.BestBid(), "aggressor must not rest")
}

func TestMatchPartialFillRests(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 100, 4, 1, 1)
	o := b.PlaceOrder(Bid, Limit, 100, 10, 2, 2)

	assert.Equal(t, int64(4), o.Filled)
	assert.Equal(t, int64(6), o.Qty)

	best := b.BestBid()
	require.NotNil(t, best)
	assert.Equal(t, int64(6), best.TotalQty)
	assert.Nil(t, b.BestAsk())
}

func TestMatchWalksLevels(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 100, 5, 1, 1)
	b.PlaceOrder(Ask, Limit, 101, 5, 2, 2)
	b.PlaceOrder(Ask, Limit, 102, 5, 3, 3)

	o := b.PlaceOrder(Bid, Limit, 101, 8, 4, 4)
	assert.Equal(t, int64(8), o.Filled)
	assert.Equal(t, int64(0), o.Qty)

	// 100 is gone, 101 keeps the remainder, 102 untouched.
	require.NotNil(t, b.BestAsk())
	assert.Equal(t, int64(101), b.BestAsk().Price)
	assert.Equal(t, int64(2), b.BestAsk().TotalQty)
	assert.Equal(t, 2, b.Asks.Size())
}

func TestMarketOrderIgnoresPrice(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 105, 5, 1, 1)
	o := b.PlaceOrder(Bid, Market, 0, 5, 2, 2)

	assert.Equal(t, int64(5), o.Filled)
	assert.Nil(t, b.BestAsk())
}

func TestIOCRemainderDoesNotRest(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 100, 3, 1, 1)
	o := b.PlaceOrder(Bid, IOC, 100, 10, 2, 2)

	assert.Equal(t, int64(3), o.Filled)
	assert.Equal(t, Inactive, o.Status)
	assert.Nil(t, b.BestBid())
}

func TestPostOnlyRejectsWhenCrossing(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Ask, Limit, 100, 5, 1, 1)
	o := b.PlaceOrder(Bid, PostOnly, 100, 5, 2, 2)

	assert.Equal(t, Inactive, o.Status)
	assert.Equal(t, int64(0), o.Filled)
	require.NotNil(t, b.BestAsk(), "resting liquidity must be untouched")
	assert.Equal(t, int64(5), b.BestAsk().TotalQty)

	// Non-crossing post-only rests.
	o2 := b.PlaceOrder(Bid, PostOnly, 99, 5, 3, 3)
	assert.Equal(t, Active, o2.Status)
	require.NotNil(t, b.BestBid())
	assert.Equal(t, int64(99), b.BestBid().Price)
}

func TestCancel(t *testing.T) {
	b := NewOrderBook()

	o := b.PlaceOrder(Bid, Limit, 100, 10, 1, 1)
	require.True(t, b.Cancel(o))
	assert.Nil(t, b.BestBid())
	assert.False(t, b.Cancel(o), "second cancel must fail")
}

func TestActiveOrdersIteration(t *testing.T) {
	b := NewOrderBook()

	b.PlaceOrder(Bid, Limit, 99, 1, 1, 1)
	b.PlaceOrder(Bid, Limit, 98, 2, 2, 2)
	b.PlaceOrder(Ask, Limit, 101, 3, 3, 3)
	b.PlaceOrder(Ask, Limit, 102, 4, 4, 4)

	var prices []int64
	b.ActiveOrders(func(price int64, _ *Order) {
		prices = append(prices, price)
	})
	// Bids best-first, then asks best-first.
	assert.Equal(t, []int64{99, 98, 101, 102}, prices)
}

func TestReleaseRetiredRecycles(t *testing.T) {
	b := NewOrderBook()

	for i := 0; i < 100; i++ {
		b.PlaceOrder(Ask, Limit, 100, 1, uint64(i), uint64(i))
		b.PlaceOrder(Bid, Limit, 100, 1, uint64(i+100), uint64(i+100))
	}
	b.ReleaseRetired()

	assert.Nil(t, b.BestAsk())
	assert.Nil(t, b.BestBid())
}
