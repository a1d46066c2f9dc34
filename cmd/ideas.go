package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newIdeasCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ideas",
		Short: "Capture and browse ideas",
	}

	cmd.AddCommand(
		newIdeasListCmd(app),
		newIdeasAddCmd(app),
		newIdeasStarCmd(app),
		newIdeasRemoveCmd(app),
	)

	return cmd
}

func newIdeasListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List ideas, favorites first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			starred, regular := app.ideas.Partition()
			out := cmd.OutOrStdout()

			if len(starred) > 0 {
				fmt.Fprintln(out, "Favoris")
				for _, idea := range starred {
					printIdea(out, idea)
				}
			}

			fmt.Fprintln(out, "Toutes les idées")
			if len(regular) == 0 {
				fmt.Fprintln(out, "  (aucune)")
			}
			for _, idea := range regular {
				printIdea(out, idea)
			}

			return nil
		},
	}
}

func newIdeasAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <content>",
		Short: "Add an idea to the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			idea, err := app.ideas.Add(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Idée ajoutée [%s]\n", shortID(idea.ID))
			return err
		},
	}
}

func newIdeasStarCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "star <id>",
		Short: "Toggle an idea's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			id, err := resolveIdeaID(app, args[0])
			if err != nil {
				return err
			}

			app.ideas.ToggleStar(id)

			idea, ok := app.ideas.Get(id)
			if ok && idea.Starred {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Idée [%s] ajoutée aux favoris.\n", shortID(id))
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Idée [%s] retirée des favoris.\n", shortID(id))
			}
			return err
		},
	}
}

func newIdeasRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete an idea",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			id, err := resolveIdeaID(app, args[0])
			if err != nil {
				return err
			}

			app.ideas.Remove(id)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Idée [%s] supprimée.\n", shortID(id))
			return err
		},
	}
}

func printIdea(out io.Writer, idea domain.Idea) {
	star := " "
	if idea.Starred {
		star = "★"
	}

	fmt.Fprintf(out, "  %s [%s] %s (%s, %s)\n",
		star, shortID(idea.ID), idea.Content, idea.Color, idea.CreatedAt.Format("02/01/2006"))
}

// resolveIdeaID matches a full id or an unambiguous prefix.
func resolveIdeaID(app *app, raw string) (domain.RecordID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("idea id is empty")
	}

	var matches []domain.RecordID
	for _, idea := range app.ideas.List() {
		if idea.ID == domain.RecordID(raw) {
			return idea.ID, nil
		}
		if strings.HasPrefix(string(idea.ID), raw) {
			matches = append(matches, idea.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no idea matches %q", raw)
	default:
		return "", fmt.Errorf("idea id %q is ambiguous (%d matches)", raw, len(matches))
	}
}

func shortID(id domain.RecordID) string {
	s := string(id)
	if len(s) > 8 {
		return s[:8]
	}

	return s
}
