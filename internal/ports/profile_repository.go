package ports

import (
	"context"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
)

// ProfileRepository is the durable store for the current identity.
// Load returns domain.ErrProfileNotFound when no identity is stored and
// domain.ErrMalformedProfile when the stored data cannot be decoded.
type ProfileRepository interface {
	Load(ctx context.Context) (domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
