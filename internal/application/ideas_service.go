package application

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// IdeasService manages the ideas board: newest first, each idea tagged
// with one of the palette colors at creation.
type IdeasService struct {
	board *Collection[domain.Idea]
	clock ports.Clock
	pick  func(n int) int
}

// NewIdeasService builds an ideas board. pick chooses the palette color
// for a new idea; nil means uniform random.
func NewIdeasService(clock ports.Clock, pick func(n int) int) *IdeasService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if pick == nil {
		pick = rand.IntN
	}

	return &IdeasService{
		board: NewCollection[domain.Idea](OrderPrepend),
		clock: clock,
		pick:  pick,
	}
}

func (s *IdeasService) Add(content string) (domain.Idea, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Idea{}, domain.ErrEmptyContent
	}

	return s.board.Add(domain.Idea{
		ID:        domain.RecordID(uuid.NewString()),
		Content:   content,
		Color:     domain.IdeaPalette[s.pick(len(domain.IdeaPalette))],
		CreatedAt: s.clock.Now(),
	}), nil
}

func (s *IdeasService) ToggleStar(id domain.RecordID) {
	s.board.Update(id, func(idea domain.Idea) domain.Idea {
		idea.Starred = !idea.Starred
		return idea
	})
}

func (s *IdeasService) Remove(id domain.RecordID) {
	s.board.Remove(id)
}

func (s *IdeasService) Get(id domain.RecordID) (domain.Idea, bool) {
	return s.board.Get(id)
}

// List returns every idea, newest first.
func (s *IdeasService) List() []domain.Idea {
	return s.board.Items()
}

// Partition splits the board into starred ideas and the rest.
func (s *IdeasService) Partition() (starred, regular []domain.Idea) {
	return s.board.Partition(func(idea domain.Idea) bool {
		return idea.Starred
	})
}

// Seed replaces the board contents with the given ideas.
func (s *IdeasService) Seed(ideas []domain.Idea) {
	s.board.Seed(ideas)
}
