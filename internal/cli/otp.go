package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/store"
)

// handoffEmail resolves the email for an OTP flow: an explicit flag
// wins; otherwise the hand-off value stored by the preceding step is
// consumed. Returns the email and a restore func that puts the value
// back when the flow did not complete.
func (a *app) handoffEmail(ctx context.Context, key, explicit string) (string, func(), error) {
	if explicit != "" {
		return explicit, func() {}, nil
	}

	email, ok, err := a.st.TakeHandoff(ctx, key)
	if err != nil {
		return "", nil, fmt.Errorf("read pending email: %w", err)
	}
	if !ok {
		return "", nil, fmt.Errorf("no pending email found; pass --email")
	}

	restore := func() {
		if err := a.st.PutHandoff(ctx, key, email); err != nil {
			a.logger.Warn("restore pending email failed", "error", err)
		}
	}
	return email, restore, nil
}

func newVerifyOTPCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "verify-otp <code>",
		Short: "Verify a registration code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, restore, err := a.handoffEmail(cmd.Context(), store.HandoffPendingOTPEmail, email)
			if err != nil {
				return err
			}

			if err := a.api.VerifyOTP(cmd.Context(), addr, args[0]); err != nil {
				// Verification did not complete; keep the hand-off for
				// a retry.
				restore()
				if printFieldErrors(err) {
					return fmt.Errorf("verification failed")
				}
				return err
			}

			fmt.Printf("%s verified. Run 'luxebid login' to sign in.\n", addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (defaults to the pending registration)")
	return cmd
}

func newResendOTPCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "resend-otp",
		Short: "Request a new verification code",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, restore, err := a.handoffEmail(cmd.Context(), store.HandoffPendingOTPEmail, email)
			if err != nil {
				return err
			}
			// Resending never completes the flow; the hand-off stays.
			defer restore()

			if err := a.api.ResendOTP(cmd.Context(), addr); err != nil {
				return err
			}
			fmt.Printf("A new code was sent to %s.\n", addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (defaults to the pending registration)")
	return cmd
}
