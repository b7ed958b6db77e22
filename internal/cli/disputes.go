package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDisputesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disputes [dispute_id]",
		Short: "View your disputes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/disputes"); err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := parseID(args[0], "dispute")
				if err != nil {
					return err
				}
				dispute, err := a.api.GetDispute(cmd.Context(), id)
				if err != nil {
					return err
				}

				fmt.Printf("Dispute #%d\n", dispute.ID)
				fmt.Printf("  Order:   #%d\n", dispute.OrderID)
				fmt.Printf("  Status:  %s\n", dispute.Status)
				fmt.Printf("  Opened:  %s\n", dispute.OpenedAt.Format("2006-01-02 15:04"))
				fmt.Printf("  Reason:  %s\n", dispute.Reason)
				return nil
			}

			disputes, err := a.api.ListDisputes(cmd.Context())
			if err != nil {
				return err
			}
			if len(disputes) == 0 {
				fmt.Println("No disputes.")
				return nil
			}

			fmt.Printf("%-8s  %-8s  %-13s  %s\n", "ID", "ORDER", "STATUS", "OPENED")
			fmt.Printf("%-8s  %-8s  %-13s  %s\n", "--", "-----", "------", "------")
			for _, d := range disputes {
				fmt.Printf("%-8d  %-8d  %-13s  %s\n", d.ID, d.OrderID, d.Status, d.OpenedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}
