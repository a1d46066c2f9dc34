package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/compagnon-app/compagnon-cli/internal/domain"
	"github.com/compagnon-app/compagnon-cli/internal/ports"
)

// SessionService is the single source of truth for who is logged in. The
// current identity lives in memory and is mirrored to the profile
// repository on login, register and logout. There is no account backend:
// login accepts any well-formed credentials and synthesizes the identity,
// after a simulated round-trip latency.
type SessionService struct {
	profiles ports.ProfileRepository
	clock    ports.Clock
	latency  time.Duration

	mu      sync.RWMutex
	current *domain.Identity
	loading bool
}

func NewSessionService(profiles ports.ProfileRepository, clock ports.Clock, latency time.Duration) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{
		profiles: profiles,
		clock:    clock,
		latency:  latency,
		loading:  true,
	}
}

// Restore loads the stored identity at startup. A missing or malformed
// profile means logged out, never a user-visible error. The loading flag
// is cleared whatever the outcome.
func (s *SessionService) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	identity, err := s.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) || errors.Is(err, domain.ErrMalformedProfile) {
			return nil
		}
		return fmt.Errorf("load profile: %w", err)
	}

	s.setCurrent(identity)
	return nil
}

// Login accepts any non-empty email with a password of at least
// domain.MinPasswordLength characters and synthesizes an identity named
// after the local part of the email. An already-current identity is
// overwritten: last call wins.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.Identity{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" || len(password) < domain.MinPasswordLength {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	identity := domain.Identity{
		ID:    domain.UserID(uuid.NewString()),
		Email: email,
		Name:  domain.NameFromEmail(email),
	}

	if err := s.profiles.Save(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("save profile: %w", err)
	}

	s.setCurrent(identity)
	return identity, nil
}

// Register is Login with an explicit display name; all three fields are
// required.
func (s *SessionService) Register(ctx context.Context, name, email, password string) (domain.Identity, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return domain.Identity{}, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || len(password) < domain.MinPasswordLength {
		return domain.Identity{}, domain.ErrInvalidRegistration
	}

	identity := domain.Identity{
		ID:    domain.UserID(uuid.NewString()),
		Email: email,
		Name:  name,
	}

	if err := s.profiles.Save(ctx, identity); err != nil {
		return domain.Identity{}, fmt.Errorf("save profile: %w", err)
	}

	s.setCurrent(identity)
	return identity, nil
}

// Logout clears the current identity and removes the stored profile.
// Logging out while logged out is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.profiles.Clear(ctx); err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}

	return nil
}

// Current returns the logged-in identity, if any.
func (s *SessionService) Current() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return domain.Identity{}, false
	}

	return *s.current, true
}

// Loading reports whether the initial restore is still in flight.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func (s *SessionService) setCurrent(identity domain.Identity) {
	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()
}

func (s *SessionService) simulateLatency(ctx context.Context) error {
	return waitFor(ctx, s.latency)
}

// waitFor sleeps for d without blocking other goroutines, returning early
// if the context is done.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
