package application

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// ReplyResult is delivered once the companion's delayed reply lands, or
// with Err set when the send context was canceled first.
type ReplyResult struct {
	Message domain.ChatMessage
	Err     error
}

// ChatService holds the conversation transcript. Each sent message
// schedules a single-shot companion reply after a typing delay; sending
// while a reply is pending is allowed and nothing is queued.
type ChatService struct {
	transcript  *Collection[domain.ChatMessage]
	responder   ports.Responder
	clock       ports.Clock
	typingDelay time.Duration

	mu      sync.Mutex
	pending int
}

func NewChatService(responder ports.Responder, clock ports.Clock, typingDelay time.Duration, greeting string) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	s := &ChatService{
		transcript:  NewCollection[domain.ChatMessage](OrderAppend),
		responder:   responder,
		clock:       clock,
		typingDelay: typingDelay,
	}

	if greeting != "" {
		s.transcript.Add(domain.ChatMessage{
			ID:      domain.RecordID(uuid.NewString()),
			Role:    domain.RoleCompanion,
			Content: greeting,
			SentAt:  clock.Now(),
		})
	}

	return s
}

// Send appends the user message and schedules the companion reply. The
// returned channel receives exactly one ReplyResult; if ctx is done before
// the typing delay elapses the pending reply is dropped and the result
// carries the context error.
func (s *ChatService) Send(ctx context.Context, text string) (domain.ChatMessage, <-chan ReplyResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ChatMessage{}, nil, domain.ErrEmptyContent
	}

	message := s.transcript.Add(domain.ChatMessage{
		ID:      domain.RecordID(uuid.NewString()),
		Role:    domain.RoleUser,
		Content: text,
		SentAt:  s.clock.Now(),
	})

	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	result := make(chan ReplyResult, 1)
	go s.respond(ctx, text, result)

	return message, result, nil
}

func (s *ChatService) respond(ctx context.Context, latest string, result chan<- ReplyResult) {
	if err := waitFor(ctx, s.typingDelay); err != nil {
		s.settle()
		result <- ReplyResult{Err: err}
		return
	}

	text, err := s.responder.Reply(ctx, latest)
	if err != nil {
		s.settle()
		result <- ReplyResult{Err: fmt.Errorf("companion reply: %w", err)}
		return
	}

	reply := s.transcript.Add(domain.ChatMessage{
		ID:      domain.RecordID(uuid.NewString()),
		Role:    domain.RoleCompanion,
		Content: text,
		SentAt:  s.clock.Now(),
	})

	// Settle before delivering so IsResponding is already false when the
	// caller observes the result.
	s.settle()
	result <- ReplyResult{Message: reply}
}

func (s *ChatService) settle() {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()
}

// IsResponding reports whether any companion reply is still pending.
func (s *ChatService) IsResponding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending > 0
}

// Messages returns the transcript in conversation order.
func (s *ChatService) Messages() []domain.ChatMessage {
	return s.transcript.Items()
}
