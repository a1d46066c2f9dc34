package domain

import "time"

// RecordID identifies one item inside a feature collection. IDs are unique
// within a collection, never across collections.
type RecordID string

// Idea is one card on the ideas board. Newest ideas sort first.
type Idea struct {
	ID        RecordID
	Content   string
	Starred   bool
	Color     IdeaColor
	CreatedAt time.Time
}

func (i Idea) RecordID() RecordID { return i.ID }

// IdeaColor tags an idea card with one of the board's palette colors.
type IdeaColor string

const (
	ColorSunshine   IdeaColor = "sunshine"
	ColorSage       IdeaColor = "sage"
	ColorTerracotta IdeaColor = "terracotta"
	ColorLavender   IdeaColor = "lavender"
	ColorOcean      IdeaColor = "ocean"
)

// IdeaPalette lists the board colors in their display order.
var IdeaPalette = []IdeaColor{
	ColorSunshine,
	ColorSage,
	ColorTerracotta,
	ColorLavender,
	ColorOcean,
}

type JournalEntry struct {
	ID      RecordID
	Title   string
	Content string
	// Mood is an optional emoji attached to the entry.
	Mood      string
	CreatedAt time.Time
}

func (e JournalEntry) RecordID() RecordID { return e.ID }

type MoodEntry struct {
	ID         RecordID
	Score      MoodScore
	Note       string
	RecordedAt time.Time
}

func (e MoodEntry) RecordID() RecordID { return e.ID }

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleCompanion ChatRole = "companion"
)

type ChatMessage struct {
	ID      RecordID
	Role    ChatRole
	Content string
	SentAt  time.Time
}

func (m ChatMessage) RecordID() RecordID { return m.ID }
