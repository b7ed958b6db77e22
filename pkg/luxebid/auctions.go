package luxebid

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/luxebid/luxebid/pkg/model"
)

// ListAuctions fetches the public auction catalogue.
func (c *Client) ListAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions, err := getList[model.Auction](ctx, c, "/auctions/")
	if err != nil {
		return nil, wrap("list auctions", err)
	}
	return auctions, nil
}

// GetAuction fetches a single auction by ID.
func (c *Client) GetAuction(ctx context.Context, id int64) (*model.Auction, error) {
	var auction model.Auction
	if err := c.get(ctx, fmt.Sprintf("/auctions/%d/", id), &auction); err != nil {
		return nil, wrap("get auction", err)
	}
	return &auction, nil
}

// ListBids fetches the bid history of an auction.
func (c *Client) ListBids(ctx context.Context, auctionID int64) ([]model.Bid, error) {
	bids, err := getList[model.Bid](ctx, c, fmt.Sprintf("/auctions/%d/bids/", auctionID))
	if err != nil {
		return nil, wrap("list bids", err)
	}
	return bids, nil
}

// PlaceBid places a bid on an auction for the authenticated buyer.
func (c *Client) PlaceBid(ctx context.Context, auctionID int64, amount decimal.Decimal) (*model.Bid, error) {
	body := map[string]any{"amount": amount}

	var bid model.Bid
	if err := c.post(ctx, fmt.Sprintf("/auctions/%d/bids/", auctionID), body, &bid); err != nil {
		return nil, wrap("place bid", err)
	}
	return &bid, nil
}

// MyBids fetches the authenticated buyer's active bids.
func (c *Client) MyBids(ctx context.Context) ([]model.Bid, error) {
	bids, err := getList[model.Bid](ctx, c, "/bids/mine/")
	if err != nil {
		return nil, wrap("my bids", err)
	}
	return bids, nil
}

// WonAuctions fetches the auctions the authenticated buyer has won.
// Order and payment details are fetched separately; see
// AggregateWonAuctions.
func (c *Client) WonAuctions(ctx context.Context) ([]model.Auction, error) {
	auctions, err := getList[model.Auction](ctx, c, "/auctions/won/")
	if err != nil {
		return nil, wrap("won auctions", err)
	}
	return auctions, nil
}

// CreateAuctionRequest carries the fields of a new listing.
type CreateAuctionRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	EndsAt        string          `json:"ends_at"`
}

// CreateAuction creates a listing for the authenticated seller.
func (c *Client) CreateAuction(ctx context.Context, req CreateAuctionRequest) (*model.Auction, error) {
	var auction model.Auction
	if err := c.post(ctx, "/auctions/", req, &auction); err != nil {
		return nil, wrap("create auction", err)
	}
	return &auction, nil
}

// MyListings fetches the authenticated seller's own listings.
func (c *Client) MyListings(ctx context.Context) ([]model.Auction, error) {
	auctions, err := getList[model.Auction](ctx, c, "/auctions/mine/")
	if err != nil {
		return nil, wrap("my listings", err)
	}
	return auctions, nil
}
