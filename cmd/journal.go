package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Write and browse journal entries",
	}

	cmd.AddCommand(newJournalListCmd(app), newJournalAddCmd(app))

	return cmd
}

func newJournalListCmd(app *app) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			entries := app.journal.List()
			if recent > 0 {
				entries = app.journal.Recent(recent)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "Aucune entrée pour le moment.")
				return err
			}

			for _, entry := range entries {
				mood := entry.Mood
				if mood == "" {
					mood = "·"
				}
				fmt.Fprintf(out, "%s %s — %s\n    %s\n",
					mood, entry.CreatedAt.Format("02/01/2006"), entry.Title, entry.Content)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Only show the N most recent entries")

	return cmd
}

func newJournalAddCmd(app *app) *cobra.Command {
	var title, content, mood string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Write a new journal entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			entry, err := app.journal.Add(title, content, mood)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Entrée enregistrée : %s\n", entry.Title)
			return err
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&content, "content", "", "Entry text")
	cmd.Flags().StringVar(&mood, "mood", "", "Optional mood emoji")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")

	return cmd
}
