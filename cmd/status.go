package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	statusadapter "github.com/compagnon-app/compagnon-cli/internal/adapters/render/status"
	"github.com/compagnon-app/compagnon-cli/internal/application"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the wellbeing dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Restore(cmd.Context()); err != nil {
				return err
			}

			overview, err := buildOverview(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			rendered, err := app.statusRenderer(overview, statusadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the overview as JSON")

	return cmd
}

func buildOverview(cmd *cobra.Command, app *app) (application.Overview, error) {
	theme, err := app.settings.Theme(cmd.Context())
	if err != nil {
		return application.Overview{}, fmt.Errorf("load theme: %w", err)
	}

	now := app.now()
	starred, regular := app.ideas.Partition()

	overview := application.Overview{
		Theme:    theme.Resolve(app.systemDark()),
		Greeting: application.Greeting(now),
		Quote:    application.DailyQuote(now),
		Week:     app.moods.Week(now),
		Stats:    app.moods.Stats(now),
		Counts: application.Counts{
			Ideas:          len(starred) + len(regular),
			StarredIdeas:   len(starred),
			JournalEntries: app.journal.Len(),
			Messages:       len(app.chat.Messages()),
		},
	}

	if identity, ok := app.session.Current(); ok {
		overview.Identity = &identity
	}

	return overview, nil
}
