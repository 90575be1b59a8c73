package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/ports"
)

const maskValue = "********"

// Store keeps the whole record set in a single JSON file and rewrites it on
// every Save.
type Store struct {
	path   string
	backup bool
}

type Option func(*Store)

// WithBackup keeps the previous file as <path>.bak before each rewrite.
func WithBackup(enabled bool) Option {
	return func(s *Store) { s.backup = enabled }
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: filepath.Clean(path)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SnapshotStore = (*Store)(nil)

func (s *Store) Path() string { return s.path }

func (s *Store) Load(ctx context.Context) (domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return domain.Snapshot{}, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.EmptySnapshot(), nil
		}
		return domain.Snapshot{}, &domain.OpError{
			Op:   "jsonstore.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	return Decode(b, s.path)
}

func (s *Store) Save(ctx context.Context, snap domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := Encode(snap, false)
	if err != nil {
		return &domain.OpError{
			Op:   "jsonstore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.mkdir",
			Kind: domain.KindExecution,
			Path: filepath.Dir(s.path),
			Err:  err,
		}
	}

	if s.backup {
		if err := s.writeBackup(); err != nil {
			return err
		}
	}

	// Whole-file replacement: tmp then rename.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "jsonstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "jsonstore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	return nil
}

func (s *Store) writeBackup() error {
	prev, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return &domain.OpError{Op: "jsonstore.backup", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	bak := s.path + ".bak"
	if err := os.WriteFile(bak, prev, 0o600); err != nil {
		return &domain.OpError{Op: "jsonstore.backup", Kind: domain.KindExecution, Path: bak, Err: err}
	}
	return nil
}

// Decode parses a stored document. Anything that is not well-formed JSON of
// the expected shape is reported as store_corrupt.
func Decode(b []byte, path string) (domain.Snapshot, error) {
	var doc storeDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.Snapshot{}, &domain.OpError{
			Op:   "jsonstore.load",
			Kind: domain.KindStoreCorrupt,
			Path: path,
			Err:  errors.Join(domain.ErrStoreCorrupt, err),
		}
	}
	return mapDocument(doc), nil
}

// Encode renders the snapshot as indented JSON. With masked set, every
// credential secret is replaced.
func Encode(snap domain.Snapshot, masked bool) ([]byte, error) {
	if masked {
		snap = maskSnapshot(snap)
	}
	b, err := json.MarshalIndent(toDocument(snap), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Export writes a copy of the snapshot that is safe to share.
func Export(w io.Writer, snap domain.Snapshot) error {
	b, err := Encode(snap, true)
	if err != nil {
		return &domain.OpError{Op: "jsonstore.export", Kind: domain.KindExecution, Err: err}
	}
	if _, err := w.Write(b); err != nil {
		return &domain.OpError{Op: "jsonstore.export", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

// maskSnapshot returns a masked copy (does NOT mutate the input).
func maskSnapshot(snap domain.Snapshot) domain.Snapshot {
	out := snap.Clone()
	for i := range out.Customers {
		if out.Customers[i].Secret != "" {
			out.Customers[i].Secret = maskValue
		}
	}
	for i := range out.Staff {
		if out.Staff[i].Secret != "" {
			out.Staff[i].Secret = maskValue
		}
	}
	return out
}
