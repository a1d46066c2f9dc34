package application

import (
	"time"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

// Overview is the read model behind the status view: session, preferences
// and a wellbeing summary.
type Overview struct {
	Identity *domain.Identity
	Theme    domain.Theme
	Greeting string
	Quote    Quote
	Week     WeekOverview
	Stats    MoodStats
	Counts   Counts
}

type Counts struct {
	Ideas          int
	StarredIdeas   int
	JournalEntries int
	Messages       int
}

type Quote struct {
	Text   string
	Author string
}

var dailyQuotes = []Quote{
	{Text: "Le bonheur n'est pas quelque chose de prêt à l'emploi. Il vient de vos propres actions.", Author: "Dalaï Lama"},
	{Text: "Prends soin de ton corps pour que ton âme ait envie d'y rester.", Author: "Proverbe"},
	{Text: "Chaque jour est une nouvelle chance de devenir qui tu veux être.", Author: "Anonyme"},
	{Text: "La sérénité vient quand on échange ses attentes contre de l'acceptation.", Author: "Anonyme"},
	{Text: "Un petit pas chaque jour finit par faire un long chemin.", Author: "Proverbe"},
}

// DailyQuote rotates through the quote list by day of year.
func DailyQuote(now time.Time) Quote {
	return dailyQuotes[now.YearDay()%len(dailyQuotes)]
}

// Greeting picks the salutation for the hour of day.
func Greeting(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "Bonjour"
	case hour < 18:
		return "Bon après-midi"
	default:
		return "Bonsoir"
	}
}
