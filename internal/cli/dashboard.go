package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/guard"
	"github.com/luxebid/luxebid/pkg/luxebid"
	"github.com/luxebid/luxebid/pkg/model"
)

// dashboardRoutes maps dashboard destinations to their guarded routes.
var dashboardRoutes = map[string]guard.Route{
	guard.BuyerDashboardPath:  {Path: guard.BuyerDashboardPath, Role: model.RoleBuyer},
	guard.SellerDashboardPath: {Path: guard.SellerDashboardPath, Role: model.RoleSeller},
	guard.AdminDashboardPath:  {Path: guard.AdminDashboardPath, Role: model.RoleAdmin},
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "dashboard [buyer|seller|admin]",
		Short:     "Open a dashboard",
		Long:      "Open a role dashboard. Requesting a dashboard for another role redirects to your own, the same way guarded navigation does.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"buyer", "seller", "admin"},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.sessions.Current()
			if sess == nil {
				return fmt.Errorf("not signed in (run 'luxebid login')")
			}

			// Default destination is the session's own role home.
			target := guard.RoleHome(sess.Role())
			if len(args) == 1 {
				target = "/" + args[0] + "-dashboard"
			}

			route, ok := dashboardRoutes[target]
			if !ok {
				return fmt.Errorf("unknown dashboard %q", target)
			}

			// Follow redirects the way a guarded route wrapper does:
			// wrong-role lands on the session's own dashboard.
			dec := guard.Evaluate(sess, route)
			for dec.Action == guard.Redirect {
				if dec.Notice != "" {
					fmt.Fprintln(os.Stderr, dec.Notice)
				}
				route = dashboardRoutes[dec.Target]
				dec = guard.Evaluate(sess, route)
			}

			switch route.Path {
			case guard.SellerDashboardPath:
				return a.renderSellerDashboard(cmd.Context())
			case guard.AdminDashboardPath:
				return a.renderAdminDashboard(cmd.Context())
			default:
				return a.renderBuyerDashboard(cmd.Context())
			}
		},
	}
}

func (a *app) renderBuyerDashboard(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	fmt.Printf("Buyer dashboard: %s\n\n", user.Name)

	bids, err := a.api.MyBids(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Active bids: %d\n", len(bids))

	won, err := a.api.AggregateWonAuctions(ctx, luxebid.AggregateOptions{})
	if err != nil {
		return err
	}
	fmt.Printf("Won auctions: %d\n", len(won))
	for _, w := range won {
		fmt.Printf("  - %s (%s)\n", w.Auction.Title, w.Status)
	}
	return nil
}

func (a *app) renderSellerDashboard(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	fmt.Printf("Seller dashboard: %s\n\n", user.Name)

	listings, err := a.api.MyListings(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Listings: %d\n", len(listings))

	orders, err := a.api.ListOrders(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Sales: %d\n", len(orders))
	return nil
}

func (a *app) renderAdminDashboard(ctx context.Context) error {
	user := a.sessions.CurrentUser()
	fmt.Printf("Admin dashboard: %s\n\n", user.Name)

	disputes, err := a.api.ListDisputes(ctx)
	if err != nil {
		return err
	}

	open := 0
	for _, d := range disputes {
		if d.Status == model.DisputeOpen || d.Status == model.DisputeReview {
			open++
		}
	}
	fmt.Printf("Disputes: %d (%d open)\n", len(disputes), open)
	return nil
}
