package luxebid

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luxebid/luxebid/pkg/model"
)

// Default aggregation settings.
const (
	DefaultAggregateConcurrency = 4
	DefaultAggregateItemTimeout = 5 * time.Second
)

// WonAuction joins a won auction with its order status and payment
// receipt. Order and Payment are nil when the backend has not created
// them yet, or when their lookups failed within the item timeout, in
// which case Status is OrderUnknown.
type WonAuction struct {
	Auction model.Auction
	Order   *model.Order
	Payment *model.Payment
	Status  model.OrderStatus
}

// AggregateOptions controls the won-auctions fan-out.
type AggregateOptions struct {
	// Concurrency bounds the number of per-item lookups in flight.
	Concurrency int

	// ItemTimeout bounds each per-item lookup. A slow or hung item
	// renders with an unknown status instead of stalling the rest.
	ItemTimeout time.Duration
}

func (o AggregateOptions) withDefaults() AggregateOptions {
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultAggregateConcurrency
	}
	if o.ItemTimeout <= 0 {
		o.ItemTimeout = DefaultAggregateItemTimeout
	}
	return o
}

// AggregateWonAuctions fetches the buyer's won auctions and joins each
// with its order status and payment receipt. Per-item lookups run as a
// bounded-concurrency fan-out; a failed or timed-out item degrades to
// an unknown status rather than failing the whole aggregation. The
// returned slice preserves the backend's auction order.
func (c *Client) AggregateWonAuctions(ctx context.Context, opts AggregateOptions) ([]WonAuction, error) {
	opts = opts.withDefaults()

	auctions, err := c.WonAuctions(ctx)
	if err != nil {
		return nil, err
	}
	if len(auctions) == 0 {
		return nil, nil
	}

	won := make([]WonAuction, len(auctions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, auction := range auctions {
		g.Go(func() error {
			won[i] = c.lookupWonItem(gctx, auction, opts.ItemTimeout)
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, wrap("won auctions", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, wrap("won auctions", err)
	}
	return won, nil
}

// lookupWonItem resolves the order and payment for one won auction
// within the item timeout. Partial data is kept: a fetched order with
// a failed payment lookup still reports the order's status.
func (c *Client) lookupWonItem(ctx context.Context, auction model.Auction, timeout time.Duration) WonAuction {
	itemCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	item := WonAuction{Auction: auction, Status: model.OrderUnknown}

	order, err := c.OrderForAuction(itemCtx, auction.ID)
	if err != nil {
		c.logger.Warn("won auction order lookup failed", "auction_id", auction.ID, "error", err)
		return item
	}
	if order == nil {
		// Auction closed but no order materialized yet.
		item.Status = model.OrderPending
		return item
	}

	item.Order = order
	item.Status = order.Status

	payment, err := c.PaymentForOrder(itemCtx, order.ID)
	if err != nil {
		c.logger.Warn("won auction payment lookup failed", "order_id", order.ID, "error", err)
		return item
	}
	item.Payment = payment
	return item
}
