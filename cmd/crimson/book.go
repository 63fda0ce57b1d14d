package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crimson/orderbook"
	"crimson/shuffle"
	"crimson/viz"
)

func newBookCommand(opts *scenarioOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "book",
		Short: "Run the order book demo on top of the tree",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBook(opts)
		},
	}
}

// runBook feeds a deterministic order flow into the book and renders
// the bid-side price index at the end.
func runBook(opts *scenarioOptions) error {
	src := shuffle.NewSource(opts.seed)
	book := orderbook.NewOrderBook()

	for i := 0; i < opts.length*10; i++ {
		side := orderbook.Bid
		if src.Next()%2 == 0 {
			side = orderbook.Ask
		}
		price := int64(src.Next()%20) + 90
		qty := int64(src.Next()%9) + 1

		o := book.PlaceOrder(side, orderbook.Limit, price, qty, uint64(i), uint64(i+1))
		if o.Filled > 0 {
			opts.log.Debug("trade",
				zap.Uint64("order", o.ID),
				zap.Int64("filled", o.Filled))
		}
	}
	book.ReleaseRetired()

	if bid := book.BestBid(); bid != nil {
		opts.log.Info("best bid",
			zap.Int64("price", bid.Price),
			zap.Int64("qty", bid.TotalQty),
			zap.Int("orders", bid.OrderCount))
	}
	if ask := book.BestAsk(); ask != nil {
		opts.log.Info("best ask",
			zap.Int64("price", ask.Price),
			zap.Int64("qty", ask.TotalQty),
			zap.Int("orders", ask.OrderCount))
	}
	opts.log.Info("book depth",
		zap.Int("bid_levels", book.Bids.Size()),
		zap.Int("ask_levels", book.Asks.Size()))

	if opts.outDir == "" {
		return nil
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	levelLabel := func(lvl *orderbook.PriceLevel) string {
		return strconv.FormatInt(lvl.Price, 10)
	}
	for name, ix := range map[string]*orderbook.LevelIndex{
		"bids": book.Bids,
		"asks": book.Asks,
	} {
		var buf bytes.Buffer
		if err := viz.WriteDOT(&buf, ix.Tree(), levelLabel); err != nil {
			return err
		}
		path := filepath.Join(opts.outDir, "book_"+name+".dot")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	return nil
}
