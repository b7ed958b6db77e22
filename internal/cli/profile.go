package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/profile"); err != nil {
				return err
			}

			if name != "" {
				user, err := a.api.UpdateProfile(cmd.Context(), name)
				if err != nil {
					if printFieldErrors(err) {
						return fmt.Errorf("profile update rejected")
					}
					return err
				}
				fmt.Printf("Profile updated: %s\n", user.Name)
				return nil
			}

			user, err := a.api.Profile(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Email:    %s\n", user.Email)
			fmt.Printf("Name:     %s\n", user.Name)
			fmt.Printf("Role:     %s\n", user.EffectiveRole())
			fmt.Printf("Verified: %t\n", user.Verified)
			fmt.Printf("Joined:   %s\n", user.JoinedAt.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Update the display name")
	return cmd
}
