package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compagnon-app/compagnon-cli/internal/application"
	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

func TestRenderLoggedInOverview(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	week := application.WeekOverview{}
	week.Days[0] = &domain.MoodEntry{ID: "m1", Score: domain.MoodGood, RecordedAt: now.AddDate(0, 0, -2)}
	week.Days[2] = &domain.MoodEntry{ID: "m2", Score: domain.MoodGreat, RecordedAt: now}

	output, err := Render(application.Overview{
		Identity: &domain.Identity{ID: "user-1", Email: "alice@example.com", Name: "Alice"},
		Theme:    domain.ThemeDark,
		Greeting: "Bonjour",
		Quote:    application.Quote{Text: "Un petit pas chaque jour finit par faire un long chemin.", Author: "Proverbe"},
		Week:     week,
		Stats:    application.MoodStats{MonthlyAverage: 4.2, GreatDays: 2, RecordedDays: 6, Streak: 3},
		Counts:   application.Counts{Ideas: 4, StarredIdeas: 2, JournalEntries: 3, Messages: 1},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Compagnon")
	assert.Contains(t, output, "Bonjour, Alice")
	assert.Contains(t, output, "alice@example.com")
	assert.Contains(t, output, "thème : dark")
	assert.Contains(t, output, "Un petit pas chaque jour")
	assert.Contains(t, output, "Humeur cette semaine")
	assert.Contains(t, output, "Lun")
	assert.Contains(t, output, "🙂")
	assert.Contains(t, output, "😄")
	assert.Contains(t, output, "4.2")
	assert.Contains(t, output, "série :")
	assert.Contains(t, output, "3 jours")
	assert.Contains(t, output, "4 (2 favoris)")
}

func TestRenderLoggedOutOverview(t *testing.T) {
	output, err := Render(application.Overview{
		Theme:    domain.ThemeLight,
		Greeting: "Bonsoir",
	}, RenderOptions{Now: time.Date(2026, 8, 26, 21, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Contains(t, output, "Non connecté")
	assert.NotContains(t, output, "Bonsoir,")
}
