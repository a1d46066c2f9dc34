package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/compagnon-app/compagnon-cli/internal/application"
	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

var weekDayLabels = [7]string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

func renderView(overview application.Overview, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Compagnon"),
		identityLine(overview, s),
		s.detail.Render(fmt.Sprintf("thème : %s", overview.Theme)),
	}

	if overview.Quote.Text != "" {
		quote := s.quote.Render(fmt.Sprintf("« %s »", overview.Quote.Text)) +
			" " + s.author.Render(fmt.Sprintf("— %s", overview.Quote.Author))
		lines = append(lines, s.section.Render(quote))
	}

	lines = append(lines, s.section.Render(renderWeek(overview.Week, s)))
	lines = append(lines, renderStats(overview.Stats, s))
	lines = append(lines, s.section.Render(countsLine(overview.Counts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func identityLine(overview application.Overview, s styles) string {
	if overview.Identity == nil {
		return s.loggedOut.Render("Non connecté")
	}

	return s.greeting.Render(fmt.Sprintf("%s, %s", overview.Greeting, overview.Identity.Name)) +
		" " + s.detail.Render(fmt.Sprintf("(%s)", overview.Identity.Email))
}

func renderWeek(week application.WeekOverview, s styles) string {
	labels := make([]string, 0, len(weekDayLabels))
	cells := make([]string, 0, len(weekDayLabels))

	for i, label := range weekDayLabels {
		labels = append(labels, s.dayLabel.Render(fmt.Sprintf("%-4s", label)))

		entry := week.Days[i]
		if entry == nil {
			cells = append(cells, s.emptyDay.Render(fmt.Sprintf("%-4s", "·")))
			continue
		}
		cells = append(cells, fmt.Sprintf("%-3s", entry.Score.Emoji()))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.heading.Render("Humeur cette semaine"),
		strings.Join(labels, ""),
		strings.Join(cells, ""),
	)
}

func renderStats(stats application.MoodStats, s styles) string {
	average := s.statKey.Render("moyenne du mois :") + " " +
		renderMoodBar(stats.MonthlyAverage, 15, s) + " " +
		s.statValue.Render(fmt.Sprintf("%.1f", stats.MonthlyAverage))

	details := s.statKey.Render("jours « Super » :") + " " + s.statValue.Render(fmt.Sprintf("%d", stats.GreatDays)) +
		s.statKey.Render("  série :") + " " + s.statValue.Render(fmt.Sprintf("%d jours", stats.Streak)) +
		s.statKey.Render("  enregistrés :") + " " + s.statValue.Render(fmt.Sprintf("%d", stats.RecordedDays))

	return lipgloss.JoinVertical(lipgloss.Left, average, details)
}

// renderMoodBar maps the 1..5 mood average onto a fixed-width bar.
func renderMoodBar(average float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := average / float64(domain.MoodGreat)
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled)) +
		s.barBracket.Render("]")
}

func countsLine(counts application.Counts, s styles) string {
	return s.statKey.Render("idées :") + " " +
		s.statValue.Render(fmt.Sprintf("%d (%d favoris)", counts.Ideas, counts.StarredIdeas)) +
		s.statKey.Render("  journal :") + " " + s.statValue.Render(fmt.Sprintf("%d", counts.JournalEntries)) +
		s.statKey.Render("  messages :") + " " + s.statValue.Render(fmt.Sprintf("%d", counts.Messages))
}
