package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newMessagesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and send messages",
	}
	cmd.AddCommand(newMessagesListCmd(a), newMessagesSendCmd(a))
	return cmd
}

func newMessagesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "with <user_id>",
		Short: "Show the conversation with a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/messages"); err != nil {
				return err
			}

			userID, err := parseID(args[0], "user")
			if err != nil {
				return err
			}

			messages, err := a.api.ListMessages(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println("No messages yet.")
				return nil
			}

			me := a.sessions.CurrentUser()
			for _, m := range messages {
				who := m.SenderName
				if who == "" {
					who = fmt.Sprintf("user %d", m.SenderID)
				}
				if me != nil && m.SenderID == me.ID {
					who = "you"
				}
				fmt.Printf("[%s] %s: %s\n", m.SentAt.Format("2006-01-02 15:04"), who, m.Body)
			}
			return nil
		},
	}
}

func newMessagesSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <user_id> <text>...",
		Short: "Send a message to a user",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireAuth("/messages"); err != nil {
				return err
			}

			userID, err := parseID(args[0], "user")
			if err != nil {
				return err
			}
			body := strings.Join(args[1:], " ")

			msg, err := a.api.SendMessage(cmd.Context(), userID, body)
			if err != nil {
				if printFieldErrors(err) {
					return fmt.Errorf("message rejected")
				}
				return err
			}

			fmt.Printf("Sent at %s.\n", msg.SentAt.Format("15:04"))
			return nil
		},
	}
}
