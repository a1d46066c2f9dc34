package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func newMoodCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Track your mood",
	}

	cmd.AddCommand(newMoodLogCmd(app), newMoodWeekCmd(app))

	return cmd
}

func newMoodLogCmd(app *app) *cobra.Command {
	var score int
	var note string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record how you feel right now (1=Difficile .. 5=Super)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			entry, err := app.moods.Log(domain.MoodScore(score), note)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Humeur enregistrée : %s %s\n", entry.Score.Emoji(), entry.Score.Label())
			return err
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Mood score from 1 (Difficile) to 5 (Super)")
	cmd.Flags().StringVar(&note, "note", "", "Optional note about your day")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newMoodWeekCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show this week's moods and monthly stats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireIdentity(cmd, app); err != nil {
				return err
			}

			now := app.now()
			week := app.moods.Week(now)
			stats := app.moods.Stats(now)
			out := cmd.OutOrStdout()

			labels := [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}
			for i, label := range labels {
				cell := "·"
				if entry := week.Days[i]; entry != nil {
					cell = fmt.Sprintf("%s %s", entry.Score.Emoji(), entry.Score.Label())
				}
				fmt.Fprintf(out, "%s  %s\n", label, cell)
			}

			fmt.Fprintf(out, "\nmoyenne du mois : %.1f\n", stats.MonthlyAverage)
			fmt.Fprintf(out, "jours « Super » : %d\n", stats.GreatDays)
			fmt.Fprintf(out, "jours enregistrés : %d\n", stats.RecordedDays)
			fmt.Fprintf(out, "série : %d jours\n", stats.Streak)

			return nil
		},
	}
}
