package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/ports"
)

const ConfigFile = domain.ConfigFileName

// Location is where a command should operate. Found is false when no
// innkeep.yaml exists above the start directory and Root is the start
// directory itself.
type Location struct {
	Root  string
	Found bool
}

// Finder walks upward from a directory looking for the workspace config.
type Finder struct {
	ConfigFile string
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: ConfigFile}
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	loc, err := f.Resolve(startDir)
	if err != nil {
		return "", err
	}
	if !loc.Found {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindNotFound,
			Path: loc.Root,
			Err:  domain.ErrNotFound,
		}
	}
	return loc.Root, nil
}

// Resolve is FindRoot without the not-found error: a directory with no
// config above it still works with default settings.
func (f *Finder) Resolve(startDir string) (Location, error) {
	dir, err := startingDir(startDir)
	if err != nil {
		return Location{}, err
	}

	name := f.ConfigFile
	if name == "" {
		name = ConfigFile
	}

	for cur := dir; ; {
		if hasFile(filepath.Join(cur, name)) {
			return Location{Root: cur, Found: true}, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return Location{Root: dir}, nil
		}
		cur = parent
	}
}

// startingDir makes the start absolute; a path to a file (a store passed
// with --store, say) starts from its directory.
func startingDir(p string) (string, error) {
	if p == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("start directory is empty"),
		}
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindExecution, Path: p, Err: err}
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return filepath.Clean(abs), nil
}

func hasFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
