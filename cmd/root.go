package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cpn",
		Short:         "Compagnon (cpn): local wellness companion",
		Long:          "cpn is a local wellness companion: track your mood, keep a journal, capture ideas and talk to a scripted companion. Everything lives on this machine; only your profile and theme survive between runs.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStatusCmd(app),
		newMoodCmd(app),
		newIdeasCmd(app),
		newJournalCmd(app),
		newChatCmd(app),
		newThemeCmd(app),
	)

	return rootCmd
}
