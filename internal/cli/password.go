package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/store"
	"github.com/luxebid/luxebid/pkg/model"
)

func newForgotPasswordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Start a password reset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := args[0]

			if err := a.api.ForgotPassword(cmd.Context(), email); err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("password reset request failed")
				}
				return err
			}

			// Hand the address to the reset-password flow.
			if err := a.st.PutHandoff(cmd.Context(), store.HandoffResetEmail, email); err != nil {
				a.logger.Warn("store reset email failed", "error", err)
			}

			fmt.Printf("A reset code was sent to %s. Run 'luxebid reset-password <code>'.\n", email)
			return nil
		},
	}
}

func newResetPasswordCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password <code>",
		Short: "Complete a password reset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, restore, err := a.handoffEmail(cmd.Context(), store.HandoffResetEmail, email)
			if err != nil {
				return err
			}

			password, err := promptPassword("New password: ")
			if err != nil {
				restore()
				return err
			}
			confirm, err := promptPassword("Confirm new password: ")
			if err != nil {
				restore()
				return err
			}
			if password != confirm {
				restore()
				verr := model.NewValidationError("confirmPassword", "passwords do not match")
				printFieldErrors(verr)
				return fmt.Errorf("password reset failed")
			}

			if err := a.api.ResetPassword(cmd.Context(), addr, args[0], password); err != nil {
				restore()
				if printFieldErrors(err) {
					return fmt.Errorf("password reset failed")
				}
				return err
			}

			fmt.Println("Password reset. Run 'luxebid login' to sign in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (defaults to the pending reset)")
	return cmd
}

func newChangePasswordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the password of the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/change-password"); err != nil {
				return err
			}

			oldPassword, err := promptPassword("Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := promptPassword("New password: ")
			if err != nil {
				return err
			}

			if err := a.api.ChangePassword(cmd.Context(), oldPassword, newPassword); err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("password change failed")
				}
				return err
			}

			// The backend invalidated every session for this account;
			// drop all local session data and send the user back
			// through login.
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("Password changed. All sessions were signed out; run 'luxebid login'.")
			return nil
		},
	}
}
