package application

import (
	"strings"

	"github.com/google/uuid"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// JournalService manages journal entries in insertion order. Entries carry
// a title, free text and an optional mood emoji.
type JournalService struct {
	entries *Collection[domain.JournalEntry]
	clock   ports.Clock
}

func NewJournalService(clock ports.Clock) *JournalService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &JournalService{
		entries: NewCollection[domain.JournalEntry](OrderAppend),
		clock:   clock,
	}
}

func (s *JournalService) Add(title, content, mood string) (domain.JournalEntry, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return domain.JournalEntry{}, domain.ErrEmptyContent
	}

	return s.entries.Add(domain.JournalEntry{
		ID:        domain.RecordID(uuid.NewString()),
		Title:     title,
		Content:   content,
		Mood:      strings.TrimSpace(mood),
		CreatedAt: s.clock.Now(),
	}), nil
}

func (s *JournalService) Remove(id domain.RecordID) {
	s.entries.Remove(id)
}

// List returns entries in insertion order.
func (s *JournalService) List() []domain.JournalEntry {
	return s.entries.Items()
}

// Recent returns up to n entries, newest first.
func (s *JournalService) Recent(n int) []domain.JournalEntry {
	items := s.entries.Items()

	recent := make([]domain.JournalEntry, 0, n)
	for i := len(items) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, items[i])
	}

	return recent
}

func (s *JournalService) Len() int {
	return s.entries.Len()
}

func (s *JournalService) Seed(entries []domain.JournalEntry) {
	s.entries.Seed(entries)
}
