package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/pkg/luxebid"
	"github.com/luxebid/luxebid/pkg/model"
)

func newWonCmd(a *app) *cobra.Command {
	var (
		concurrency int
		itemTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "won",
		Short: "List won auctions with order and payment status (buyers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireRole("/buyer/won", model.RoleBuyer); err != nil {
				return err
			}

			won, err := a.api.AggregateWonAuctions(cmd.Context(), luxebid.AggregateOptions{
				Concurrency: concurrency,
				ItemTimeout: itemTimeout,
			})
			if err != nil {
				return err
			}
			if len(won) == 0 {
				fmt.Println("No won auctions.")
				return nil
			}

			fmt.Printf("%-8s  %-30s  %-10s  %-10s  %s\n", "AUCTION", "TITLE", "STATUS", "TOTAL", "PAID")
			fmt.Printf("%-8s  %-30s  %-10s  %-10s  %s\n", "-------", "-----", "------", "-----", "----")
			for _, w := range won {
				total := "-"
				if w.Order != nil {
					total = w.Order.Total.StringFixed(2)
				}
				paid := "-"
				if w.Payment != nil {
					paid = w.Payment.PaidAt.Format("2006-01-02")
				}
				fmt.Printf("%-8d  %-30s  %-10s  %-10s  %s\n", w.Auction.ID, w.Auction.Title, w.Status, total, paid)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", luxebid.DefaultAggregateConcurrency, "Parallel per-item lookups")
	cmd.Flags().DurationVar(&itemTimeout, "item-timeout", luxebid.DefaultAggregateItemTimeout, "Per-item lookup timeout")
	return cmd
}
