package luxebid

import (
	"context"
	"fmt"

	"github.com/luxebid/luxebid/pkg/model"
)

// ListOrders fetches the authenticated user's orders (purchases for
// buyers, sales for sellers; the backend scopes by the credential).
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := getList[model.Order](ctx, c, "/orders/")
	if err != nil {
		return nil, wrap("list orders", err)
	}
	return orders, nil
}

// GetOrder fetches a single order by ID.
func (c *Client) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := c.get(ctx, fmt.Sprintf("/orders/%d/", id), &order); err != nil {
		return nil, wrap("get order", err)
	}
	return &order, nil
}

// OrderForAuction fetches the order created for a won auction.
// Returns nil without error when no order exists yet; an auction can
// close before its order is materialized.
func (c *Client) OrderForAuction(ctx context.Context, auctionID int64) (*model.Order, error) {
	orders, err := getList[model.Order](ctx, c, fmt.Sprintf("/orders/?auction=%d", auctionID))
	if err != nil {
		return nil, wrap("order for auction", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

// ListPayments fetches the authenticated user's payment receipts.
func (c *Client) ListPayments(ctx context.Context) ([]model.Payment, error) {
	payments, err := getList[model.Payment](ctx, c, "/payments/")
	if err != nil {
		return nil, wrap("list payments", err)
	}
	return payments, nil
}

// GetPayment fetches a single payment receipt by ID.
func (c *Client) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	var payment model.Payment
	if err := c.get(ctx, fmt.Sprintf("/payments/%d/", id), &payment); err != nil {
		return nil, wrap("get payment", err)
	}
	return &payment, nil
}

// PaymentForOrder fetches the payment settled against an order.
// Returns nil without error when the order is unpaid.
func (c *Client) PaymentForOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	payments, err := getList[model.Payment](ctx, c, fmt.Sprintf("/payments/?order=%d", orderID))
	if err != nil {
		return nil, wrap("payment for order", err)
	}
	if len(payments) == 0 {
		return nil, nil
	}
	return &payments[0], nil
}
