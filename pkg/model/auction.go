package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of a listing.
type AuctionStatus string

const (
	AuctionActive    AuctionStatus = "active"
	AuctionClosed    AuctionStatus = "closed"
	AuctionCancelled AuctionStatus = "cancelled"
)

// Auction represents a LuxeBid listing.
type Auction struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	SellerID      int64           `json:"seller_id"`
	SellerName    string          `json:"seller_name"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentBid    decimal.Decimal `json:"current_bid"`
	BidCount      int             `json:"bid_count"`
	Status        AuctionStatus   `json:"status"`
	EndsAt        time.Time       `json:"ends_at"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Ended reports whether the auction can no longer accept bids.
func (a *Auction) Ended() bool {
	return a.Status != AuctionActive || time.Now().After(a.EndsAt)
}

// Bid is a single bid placed on an auction.
type Bid struct {
	ID         int64           `json:"id"`
	AuctionID  int64           `json:"auction_id"`
	BidderID   int64           `json:"bidder_id"`
	BidderName string          `json:"bidder_name"`
	Amount     decimal.Decimal `json:"amount"`
	PlacedAt   time.Time       `json:"created_at"`
}
