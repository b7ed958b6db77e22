package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/pkg/luxebid"
	"github.com/luxebid/luxebid/pkg/model"
)

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s ID %q", what, arg)
	}
	return id, nil
}

func newAuctionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auctions",
		Short: "Browse and manage auctions",
	}

	cmd.AddCommand(
		newAuctionsListCmd(a),
		newAuctionsShowCmd(a),
		newAuctionsCreateCmd(a),
		newAuctionsMineCmd(a),
	)
	return cmd
}

func newAuctionsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open auctions",
		RunE: func(cmd *cobra.Command, args []string) error {
			auctions, err := a.api.ListAuctions(cmd.Context())
			if err != nil {
				return err
			}
			printAuctionTable(auctions)
			return nil
		},
	}
}

func newAuctionsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <auction_id>",
		Short: "Show an auction and its bid history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "auction")
			if err != nil {
				return err
			}

			auction, err := a.api.GetAuction(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("Auction: %s (#%d)\n", auction.Title, auction.ID)
			fmt.Printf("  Seller:      %s\n", auction.SellerName)
			fmt.Printf("  Status:      %s\n", auction.Status)
			fmt.Printf("  Current bid: %s (%d bids)\n", auction.CurrentBid.StringFixed(2), auction.BidCount)
			fmt.Printf("  Ends:        %s\n", auction.EndsAt.Format("2006-01-02 15:04"))
			if auction.Description != "" {
				fmt.Printf("  %s\n", auction.Description)
			}

			bids, err := a.api.ListBids(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(bids) > 0 {
				fmt.Println("  Bids:")
				for _, b := range bids {
					fmt.Printf("    - %s by %s at %s\n", b.Amount.StringFixed(2), b.BidderName, b.PlacedAt.Format("2006-01-02 15:04"))
				}
			}
			return nil
		},
	}
}

func newAuctionsCreateCmd(a *app) *cobra.Command {
	var (
		title       string
		description string
		starting    string
		endsAt      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a listing (sellers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole("/seller/listings/new", model.RoleSeller); err != nil {
				return err
			}

			price, err := decimal.NewFromString(starting)
			if err != nil {
				return fmt.Errorf("invalid starting price %q", starting)
			}

			auction, err := a.api.CreateAuction(cmd.Context(), luxebid.CreateAuctionRequest{
				Title:         title,
				Description:   description,
				StartingPrice: price,
				EndsAt:        endsAt,
			})
			if err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("listing rejected")
				}
				return err
			}

			fmt.Printf("Listing #%d created: %s (starts at %s)\n", auction.ID, auction.Title, auction.StartingPrice.StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Listing title")
	cmd.Flags().StringVar(&description, "description", "", "Listing description")
	cmd.Flags().StringVar(&starting, "starting-price", "", "Starting price")
	cmd.Flags().StringVar(&endsAt, "ends-at", "", "Auction end time (RFC 3339)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("starting-price")
	cmd.MarkFlagRequired("ends-at")
	return cmd
}

func newAuctionsMineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own listings (sellers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole("/seller/listings", model.RoleSeller); err != nil {
				return err
			}

			auctions, err := a.api.MyListings(cmd.Context())
			if err != nil {
				return err
			}
			printAuctionTable(auctions)
			return nil
		},
	}
}

func printAuctionTable(auctions []model.Auction) {
	if len(auctions) == 0 {
		fmt.Println("No auctions found.")
		return
	}

	fmt.Printf("%-8s  %-30s  %-10s  %-12s  %s\n", "ID", "TITLE", "STATUS", "CURRENT BID", "ENDS")
	fmt.Printf("%-8s  %-30s  %-10s  %-12s  %s\n", "--", "-----", "------", "-----------", "----")
	for _, au := range auctions {
		fmt.Printf("%-8d  %-30s  %-10s  %-12s  %s\n",
			au.ID, au.Title, au.Status, au.CurrentBid.StringFixed(2), au.EndsAt.Format("2006-01-02 15:04"))
	}
}

func newBidCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bid <auction_id> <amount>",
		Short: "Place a bid (buyers only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole("/auctions/bid", model.RoleBuyer); err != nil {
				return err
			}

			id, err := parseID(args[0], "auction")
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}

			bid, err := a.api.PlaceBid(cmd.Context(), id, amount)
			if err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("bid rejected")
				}
				return err
			}

			fmt.Printf("Bid placed: %s on auction #%d\n", bid.Amount.StringFixed(2), bid.AuctionID)
			return nil
		},
	}
}

func newBidsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bids",
		Short: "List your active bids (buyers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole("/buyer/bids", model.RoleBuyer); err != nil {
				return err
			}

			bids, err := a.api.MyBids(cmd.Context())
			if err != nil {
				return err
			}
			if len(bids) == 0 {
				fmt.Println("No active bids.")
				return nil
			}

			fmt.Printf("%-8s  %-10s  %-12s  %s\n", "BID", "AUCTION", "AMOUNT", "PLACED")
			fmt.Printf("%-8s  %-10s  %-12s  %s\n", "---", "-------", "------", "------")
			for _, b := range bids {
				fmt.Printf("%-8d  %-10d  %-12s  %s\n", b.ID, b.AuctionID, b.Amount.StringFixed(2), b.PlacedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
