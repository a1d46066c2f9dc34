package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newThemeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the appearance preference",
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, err := app.settings.Theme(cmd.Context())
			if err != nil {
				return err
			}

			resolved := theme.Resolve(app.systemDark())
			if theme == domain.ThemeSystem {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", theme, resolved)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
			return err
		},
	}

	cmd.AddCommand(newThemeSetCmd(app))

	return cmd
}

func newThemeSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <light|dark|system>",
		Short: "Change the appearance preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := domain.Theme(args[0])
			if err := app.settings.SaveTheme(cmd.Context(), theme); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Thème enregistré : %s\n", theme)
			return err
		},
	}
}
