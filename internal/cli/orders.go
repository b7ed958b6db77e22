package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrdersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [order_id]",
		Short: "List your orders, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/orders"); err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := parseID(args[0], "order")
				if err != nil {
					return err
				}
				order, err := a.api.GetOrder(cmd.Context(), id)
				if err != nil {
					return err
				}

				fmt.Printf("Order #%d\n", order.ID)
				fmt.Printf("  Auction: #%d\n", order.AuctionID)
				fmt.Printf("  Status:  %s\n", order.Status)
				fmt.Printf("  Total:   %s\n", order.Total.StringFixed(2))
				fmt.Printf("  Created: %s\n", order.CreatedAt.Format("2006-01-02 15:04"))
				return nil
			}

			orders, err := a.api.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			if len(orders) == 0 {
				fmt.Println("No orders found.")
				return nil
			}

			fmt.Printf("%-8s  %-10s  %-11s  %-10s  %s\n", "ID", "AUCTION", "STATUS", "TOTAL", "CREATED")
			fmt.Printf("%-8s  %-10s  %-11s  %-10s  %s\n", "--", "-------", "------", "-----", "-------")
			for _, o := range orders {
				fmt.Printf("%-8d  %-10d  %-11s  %-10s  %s\n", o.ID, o.AuctionID, o.Status, o.Total.StringFixed(2), o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
