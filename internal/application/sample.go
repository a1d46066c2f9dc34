package application

import (
	"fmt"
	"time"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

// SeedSampleData loads the starter content a fresh session begins with:
// a few ideas, journal entries and the past week of moods. Collections are
// memory-only, so every process starts from this set.
func SeedSampleData(ideas *IdeasService, journal *JournalService, moods *MoodService, now time.Time) {
	day := 24 * time.Hour

	ideas.Seed([]domain.Idea{
		{
			ID:        "idea-1",
			Content:   "Créer une routine matinale de 30 minutes avec méditation, étirements et écriture",
			Starred:   true,
			Color:     domain.ColorSunshine,
			CreatedAt: now,
		},
		{
			ID:        "idea-2",
			Content:   "Essayer le journaling gratitude tous les soirs avant de dormir",
			Color:     domain.ColorSage,
			CreatedAt: now.Add(-1 * day),
		},
		{
			ID:        "idea-3",
			Content:   "Organiser une digital detox le weekend",
			Starred:   true,
			Color:     domain.ColorTerracotta,
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID:        "idea-4",
			Content:   "Apprendre la respiration carrée pour gérer le stress",
			Color:     domain.ColorLavender,
			CreatedAt: now.Add(-3 * day),
		},
	})

	journal.Seed([]domain.JournalEntry{
		{
			ID:        "journal-3",
			Title:     "Moment de calme",
			Content:   "J'ai pris 10 minutes pour méditer ce matin. Cela m'a aidé à me recentrer...",
			Mood:      "😌",
			CreatedAt: now.Add(-2 * day),
		},
		{
			ID:        "journal-2",
			Title:     "Réflexions sur mes objectifs",
			Content:   "J'ai fait le point sur mes priorités. Ce qui compte vraiment pour moi c'est...",
			Mood:      "🤔",
			CreatedAt: now.Add(-1 * day),
		},
		{
			ID:        "journal-1",
			Title:     "Gratitude du matin",
			Content:   "Aujourd'hui je suis reconnaissant pour ma santé, ma famille et cette belle journée ensoleillée...",
			Mood:      "😊",
			CreatedAt: now,
		},
	})

	// Six recorded days, the current day left open.
	scores := []domain.MoodScore{
		domain.MoodGood,
		domain.MoodGreat,
		domain.MoodOkay,
		domain.MoodGood,
		domain.MoodGreat,
		domain.MoodGood,
	}

	entries := make([]domain.MoodEntry, 0, len(scores))
	for i, score := range scores {
		entries = append(entries, domain.MoodEntry{
			ID:         domain.RecordID(fmt.Sprintf("mood-%d", i+1)),
			Score:      score,
			RecordedAt: now.Add(-time.Duration(len(scores)-i) * day),
		})
	}
	moods.Seed(entries)
}
