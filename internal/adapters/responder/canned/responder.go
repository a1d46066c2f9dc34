package canned

import (
	"context"
	"math/rand/v2"

	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// Greeting opens every transcript.
const Greeting = "Bonjour ! Je suis votre compagnon personnel. Comment puis-je vous aider aujourd'hui ? N'hésitez pas à me parler de votre journée, vos pensées ou tout ce qui vous préoccupe. 🌿"

var replies = []string{
	"Je comprends ce que vous ressentez. Prendre le temps de réfléchir à ses pensées est une excellente habitude. Y a-t-il quelque chose de spécifique dont vous aimeriez parler ?",
	"C'est formidable que vous preniez le temps de vous exprimer. Continuez à cultiver cette bienveillance envers vous-même. 🌱",
	"Merci de partager cela avec moi. N'oubliez pas que chaque petit pas compte dans votre parcours de bien-être.",
	"Je suis là pour vous écouter. Qu'est-ce qui vous aiderait à vous sentir mieux en ce moment ?",
}

// Responder answers every message with a uniform random pick from the
// fixed reply set, ignoring the message content.
type Responder struct {
	pick func(n int) int
}

var _ ports.Responder = (*Responder)(nil)

func New() *Responder {
	return &Responder{pick: rand.IntN}
}

// NewWithPick fixes the selection function, for deterministic tests.
func NewWithPick(pick func(n int) int) *Responder {
	return &Responder{pick: pick}
}

func (r *Responder) Reply(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return replies[r.pick(len(replies))], nil
}

// Replies returns a copy of the reply set.
func Replies() []string {
	out := make([]string, len(replies))
	copy(out, replies)
	return out
}
