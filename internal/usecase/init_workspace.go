package usecase

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/ports"
)

// InitResult reports what `innkeep init` left behind.
type InitResult struct {
	Root       string
	ConfigPath string
	// StorePath is set when a snapshot already sits at the default location;
	// it is adopted as-is, never overwritten.
	StorePath string
}

type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	log         *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, log *slog.Logger) *InitWorkspace {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &InitWorkspace{initializer: initializer, log: log}
}

func (uc *InitWorkspace) Execute(root string, force bool) (InitResult, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return InitResult{}, &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	root = filepath.Clean(root)

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		uc.log.Error("workspace.init_failed", "root", root, "err", err)
		return InitResult{}, err
	}

	res := InitResult{Root: root, ConfigPath: filepath.Join(root, domain.ConfigFileName)}
	store := filepath.Join(root, domain.DefaultConfig().Store.Path)
	if info, err := os.Stat(store); err == nil && !info.IsDir() {
		res.StorePath = store
	}

	uc.log.Info("workspace.initialized", "root", root, "force", force, "existing_store", res.StorePath != "")
	return res, nil
}
