package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"

	// OrderUnknown marks an order whose status could not be fetched in
	// time. It renders as "unknown" instead of stalling the listing.
	OrderUnknown OrderStatus = "unknown"
)

// Order is created when an auction closes with a winning bid.
type Order struct {
	ID        int64           `json:"id"`
	AuctionID int64           `json:"auction_id"`
	BuyerID   int64           `json:"buyer_id"`
	Status    OrderStatus     `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Payment is the settled payment record for an order. Only receipt
// data is exposed; gateway integration lives entirely on the backend.
type Payment struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	PaidAt    time.Time       `json:"paid_at"`
}
