package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/innkeep/internal/domain"
)

type recordingInit struct {
	specs []domain.WorkspaceSpec
	force bool
	err   error
}

func (r *recordingInit) Init(spec domain.WorkspaceSpec, force bool) error {
	r.specs = append(r.specs, spec)
	r.force = force
	return r.err
}

func TestInitWorkspace_ReportsConfigAndExistingStore(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "data.json"), []byte(`{"clientes":[]}`), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}

	fake := &recordingInit{}
	res, err := NewInitWorkspace(fake, nil).Execute(root+string(filepath.Separator), true)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(fake.specs) != 1 || fake.specs[0].Root != root || !fake.force {
		t.Fatalf("initializer got %+v force=%v", fake.specs, fake.force)
	}
	if res.Root != root || res.ConfigPath != filepath.Join(root, "innkeep.yaml") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.StorePath != filepath.Join(root, "data.json") {
		t.Fatalf("expected existing store to be reported, got %+v", res)
	}
}

func TestInitWorkspace_FreshDirectoryHasNoStore(t *testing.T) {
	res, err := NewInitWorkspace(&recordingInit{}, nil).Execute(t.TempDir(), false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.StorePath != "" {
		t.Fatalf("expected no store, got %q", res.StorePath)
	}
}

func TestInitWorkspace_EmptyRoot(t *testing.T) {
	fake := &recordingInit{}
	_, err := NewInitWorkspace(fake, nil).Execute("  ", false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if len(fake.specs) != 0 {
		t.Fatalf("initializer must not run for an empty root")
	}
}

func TestInitWorkspace_PropagatesInitializerError(t *testing.T) {
	boom := errors.New("disk full")
	_, err := NewInitWorkspace(&recordingInit{err: boom}, nil).Execute(t.TempDir(), false)
	if !errors.Is(err, boom) {
		t.Fatalf("expected initializer error, got %v", err)
	}
}
