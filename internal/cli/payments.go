package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/pkg/model"
)

func newPaymentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "payments",
		Short: "List your payment receipts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/payments"); err != nil {
				return err
			}

			payments, err := a.api.ListPayments(cmd.Context())
			if err != nil {
				return err
			}
			if len(payments) == 0 {
				fmt.Println("No payments found.")
				return nil
			}

			fmt.Printf("%-8s  %-8s  %-10s  %-14s  %s\n", "ID", "ORDER", "AMOUNT", "METHOD", "PAID")
			fmt.Printf("%-8s  %-8s  %-10s  %-14s  %s\n", "--", "-----", "------", "------", "----")
			for _, p := range payments {
				fmt.Printf("%-8d  %-8d  %-10s  %-14s  %s\n", p.ID, p.OrderID, p.Amount.StringFixed(2), p.Method, p.PaidAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newReceiptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt <payment_id>",
		Short: "Render a payment receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/payments/receipt"); err != nil {
				return err
			}

			id, err := parseID(args[0], "payment")
			if err != nil {
				return err
			}
			payment, err := a.api.GetPayment(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Print(renderReceipt(payment))
			return nil
		},
	}
}

// renderReceipt formats a payment as a printable receipt.
func renderReceipt(p *model.Payment) string {
	var b strings.Builder
	line := strings.Repeat("=", 40)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "            LuxeBid Receipt")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Receipt #:  %d\n", p.ID)
	fmt.Fprintf(&b, "Order #:    %d\n", p.OrderID)
	fmt.Fprintf(&b, "Amount:     %s\n", p.Amount.StringFixed(2))
	fmt.Fprintf(&b, "Method:     %s\n", p.Method)
	fmt.Fprintf(&b, "Reference:  %s\n", p.Reference)
	fmt.Fprintf(&b, "Paid:       %s\n", p.PaidAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(&b, line)
	return b.String()
}
