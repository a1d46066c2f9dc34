package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compagnon-app/compagnon-cli/internal/application"
	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to your companion",
	}

	cmd.AddCommand(newChatSendCmd(app), newChatLogCmd(app))

	return cmd
}

func newChatSendCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Send a message and wait for the companion's reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			message, reply, err := app.chat.Send(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vous : %s\n", message.Content)

			result, err := awaitReply(cmd, reply)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(out, "Compagnon : %s\n", result.Content)
			return err
		},
	}
}

func newChatLogCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show the conversation so far",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, message := range app.chat.Messages() {
				speaker := "Compagnon"
				if message.Role == domain.RoleUser {
					speaker = "Vous"
				}
				fmt.Fprintf(out, "%s : %s\n", speaker, message.Content)
			}

			return nil
		},
	}
}

func awaitReply(cmd *cobra.Command, reply <-chan application.ReplyResult) (domain.ChatMessage, error) {
	result, err := runTypingSpinner(cmd.Context(), cmd.ErrOrStderr(), reply)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	if result.Err != nil {
		return domain.ChatMessage{}, fmt.Errorf("await companion reply: %w", result.Err)
	}

	return result.Message, nil
}
