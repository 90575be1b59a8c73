package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/ports"
)

// Manager is the single authority over customers, staff, rooms and
// reservations. Every successful mutation is followed by a full save through
// the SnapshotStore; the in-memory state only changes once that save succeeds.
type Manager struct {
	store     ports.SnapshotStore
	creds     ports.CredentialVerifier
	checkRefs bool
	newID     domain.IDFunc
	log       *slog.Logger

	mu    sync.Mutex
	state domain.Snapshot
}

type Option func(*Manager)

// WithCredentials replaces the default plain-text verifier.
func WithCredentials(v ports.CredentialVerifier) Option {
	return func(m *Manager) {
		if v != nil {
			m.creds = v
		}
	}
}

// WithReferenceCheck toggles the customer/room existence check on new
// reservations.
func WithReferenceCheck(enabled bool) Option {
	return func(m *Manager) { m.checkRefs = enabled }
}

// WithIDs is useful for tests.
func WithIDs(fn domain.IDFunc) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

func NewManager(store ports.SnapshotStore, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		creds:     exactSecrets{},
		checkRefs: true,
		newID:     domain.NewID,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
		state:     domain.EmptySnapshot(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open replaces the in-memory state with what the store holds. A corrupt
// store is returned as-is (KindStoreCorrupt) and leaves the manager empty.
func (m *Manager) Open(ctx context.Context) error {
	snap, err := m.store.Load(ctx)
	if err != nil {
		m.log.Error("store.load.failed", "err", err)
		return err
	}

	m.mu.Lock()
	m.state = snap
	m.mu.Unlock()

	m.log.Info("store.loaded",
		"customers", len(snap.Customers),
		"staff", len(snap.Staff),
		"rooms", len(snap.Rooms),
		"reservations", len(snap.Reservations),
	)
	return nil
}

// mutate applies fn to a copy of the state, saves the copy and swaps it in.
// If fn fails nothing is saved.
func (m *Manager) mutate(ctx context.Context, op string, fn func(s *domain.Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := m.store.Save(ctx, next); err != nil {
		m.log.Error("store.save.failed", "op", op, "err", err)
		return err
	}

	m.state = next
	return nil
}

func (m *Manager) read(fn func(s *domain.Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.state)
}

// exactSecrets is the fallback verifier: secrets are stored and compared as typed.
type exactSecrets struct{}

func (exactSecrets) Seal(secret string) (string, error) { return secret, nil }
func (exactSecrets) Verify(stored, plain string) bool   { return stored == plain }

// idConflict rejects a caller-supplied id that is already taken.
func idConflict(op, what, id string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindConflict,
		Err:  fmt.Errorf("%s id %q already exists: %w", what, id, domain.ErrConflict),
	}
}

func hasID[T any](items []T, id string, idOf func(T) string) bool {
	for _, it := range items {
		if idOf(it) == id {
			return true
		}
	}
	return false
}

func (m *Manager) id(current, prefix string) string {
	if current != "" {
		return current
	}
	return m.newID(prefix)
}
