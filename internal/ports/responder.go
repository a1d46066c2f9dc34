package ports

import "context"

// Responder produces the companion's reply to the latest user message.
// The canned adapter picks from a fixed set; a real backend can satisfy
// the same contract without touching the chat service.
type Responder interface {
	Reply(ctx context.Context, latest string) (string, error)
}
