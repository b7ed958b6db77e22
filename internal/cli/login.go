package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxebid/luxebid/internal/guard"
	"github.com/luxebid/luxebid/internal/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var (
		email       string
		noAnimation bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to LuxeBid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				var err error
				email, err = promptLine("Email: ")
				if err != nil {
					return err
				}
			}
			if email == "" {
				return fmt.Errorf("email cannot be empty")
			}

			password, err := promptPassword("Password: ")
			if err != nil {
				return err
			}

			user, err := a.sessions.Login(cmd.Context(), email, password)
			if err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("login failed")
				}
				return err
			}

			dur := session.DefaultSequenceDuration
			if noAnimation {
				dur = time.Millisecond
			}

			home := guard.RoleHome(user.EffectiveRole())
			seq := session.NewSequence(dur, func() {
				fmt.Printf("Signed in as %s (%s). Continue at %s\n", user.Name, user.EffectiveRole(), home)
			})

			fmt.Println("Welcome back!")
			return seq.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().BoolVar(&noAnimation, "no-animation", false, "Skip the sign-in hold")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.sessions.Current()
			if sess == nil {
				fmt.Println("Not signed in.")
				return nil
			}

			fmt.Printf("Email: %s\n", sess.User.Email)
			fmt.Printf("Name:  %s\n", sess.User.Name)
			fmt.Printf("Role:  %s\n", sess.Role())
			if exp, ok := session.TokenExpiry(sess.Token); ok {
				fmt.Printf("Token: expires %s\n", exp.Format(time.RFC1123))
			}
			return nil
		},
	}
}
