// Package cli implements the LuxeBid command-line client.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/config"
	"github.com/luxebid/luxebid/internal/logging"
	"github.com/luxebid/luxebid/internal/session"
	"github.com/luxebid/luxebid/internal/store"
	"github.com/luxebid/luxebid/pkg/luxebid"
)

// app carries the wired client pieces. It is built once per
// invocation in PersistentPreRunE and handed to every command, so
// nothing session-related lives in package globals.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	api      *luxebid.Client
	sessions *session.Store
	st       store.Store
}

// NewRootCmd creates the root cobra command for the luxebid CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	var (
		flagAPI       string
		flagDB        string
		flagDebug     bool
		flagLogLevel  string
		flagLogFormat string
	)

	defaults := config.Default()

	root := &cobra.Command{
		Use:   "luxebid",
		Short: "LuxeBid: online auction marketplace client",
		Long:  "LuxeBid browses auctions, places bids, and manages orders, payments, messages, and disputes against a LuxeBid backend.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagDebug {
				flagLogLevel = "debug"
			}
			a.logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)

			a.cfg = defaults
			a.cfg.APIBaseURL = flagAPI
			a.cfg.LogLevel = flagLogLevel
			a.cfg.LogFormat = flagLogFormat

			dbPath := flagDB
			if dbPath == "" {
				p, err := config.DefaultDBPath()
				if err != nil {
					return fmt.Errorf("resolve state path: %w", err)
				}
				dbPath = p
			}
			a.cfg.DBPath = dbPath

			st, err := store.NewSQLiteStore(dbPath, a.logger)
			if err != nil {
				return fmt.Errorf("open local state: %w", err)
			}
			if err := st.Migrate(cmd.Context()); err != nil {
				st.Close()
				return fmt.Errorf("migrate local state: %w", err)
			}
			a.st = st

			a.api = luxebid.NewClient(luxebid.DefaultConfig().WithBaseURL(a.cfg.APIBaseURL), a.logger)
			a.sessions = session.NewStore(a.api, a.st, a.logger)
			a.api.SetCredentials(a.sessions)
			a.api.OnAuthFailure(func() {
				fmt.Fprintln(os.Stderr, "Your session has expired. Run 'luxebid login' to sign in again.")
			})

			if err := a.sessions.Restore(cmd.Context()); err != nil {
				a.logger.Warn("session restore failed", "error", err)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.st != nil {
				return a.st.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagAPI, "api", defaults.APIBaseURL, "LuxeBid API base URL (or LUXEBID_API env)")
	root.PersistentFlags().StringVar(&flagDB, "state", "", "Path to local state database (default ~/.luxebid/luxebid.db)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", defaults.LogFormat, "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newVerifyOTPCmd(a),
		newResendOTPCmd(a),
		newForgotPasswordCmd(a),
		newResetPasswordCmd(a),
		newChangePasswordCmd(a),
		newAuctionsCmd(a),
		newBidCmd(a),
		newBidsCmd(a),
		newWonCmd(a),
		newOrdersCmd(a),
		newPaymentsCmd(a),
		newReceiptCmd(a),
		newMessagesCmd(a),
		newDisputesCmd(a),
		newDashboardCmd(a),
		newProfileCmd(a),
	)

	return root
}
