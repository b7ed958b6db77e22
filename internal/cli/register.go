package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/store"
	"github.com/luxebid/luxebid/pkg/luxebid"
	"github.com/luxebid/luxebid/pkg/model"
)

func newRegisterCmd(a *app) *cobra.Command {
	var (
		email string
		name  string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a LuxeBid account",
		Long:  "Create a buyer or seller account. A verification code is mailed to the address; confirm it with 'luxebid verify-otp'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = promptLine("Email: "); err != nil {
					return err
				}
			}
			if name == "" {
				if name, err = promptLine("Display name: "); err != nil {
					return err
				}
			}

			if role != string(model.RoleBuyer) && role != string(model.RoleSeller) {
				return fmt.Errorf("role must be %q or %q", model.RoleBuyer, model.RoleSeller)
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}

			// Mismatched passwords are rejected here, before any
			// request goes out.
			user, err := a.api.Register(cmd.Context(), luxebid.RegisterRequest{
				Email:           email,
				Name:            name,
				Role:            model.Role(role),
				Password:        password,
				ConfirmPassword: confirm,
			})
			if err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("registration failed")
				}
				return err
			}

			// Hand the pending address to the verify-otp flow.
			if err := a.st.PutHandoff(cmd.Context(), store.HandoffPendingOTPEmail, user.Email); err != nil {
				a.logger.Warn("store pending-OTP email failed", "error", err)
			}

			fmt.Printf("Account created for %s.\n", user.Email)
			fmt.Println("A verification code was sent to your email. Run 'luxebid verify-otp <code>' to activate the account.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (prompted if omitted)")
	cmd.Flags().StringVar(&role, "role", string(model.RoleBuyer), "Account role: buyer or seller")
	return cmd
}
