package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/infra/credentials"
	"github.com/aalvaropc/innkeep/internal/infra/jsonstore"
	"github.com/aalvaropc/innkeep/internal/infra/logger"
	"github.com/aalvaropc/innkeep/internal/infra/workspacefinder"
	"github.com/aalvaropc/innkeep/internal/usecase"
)

type rootFlags struct {
	workspace string
	store     string
	debug     bool
}

type workspaceCtx struct {
	root  string
	cfg   domain.Config
	debug bool

	store   *jsonstore.Store
	manager *usecase.Manager
	log     *slog.Logger

	cleanup func() error
}

// openWorkspace resolves the workspace, loads innkeep.yaml, starts the file
// logger and opens the manager over the configured store.
func openWorkspace(ctx context.Context, flags *rootFlags) (*workspaceCtx, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := resolveWorkspaceRoot(flags.workspace)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	debug := flags.debug || cfg.Logging.Debug
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	log := logger.L()

	ws := &workspaceCtx{root: root, cfg: cfg, debug: debug, log: log, cleanup: cleanup}

	verifier, err := credentials.FromConfig(cfg.Auth)
	if err != nil {
		ws.Close()
		return nil, err
	}

	storePath := workspacefinder.StorePath(root, cfg)
	if s := strings.TrimSpace(flags.store); s != "" {
		abs, err := filepath.Abs(s)
		if err != nil {
			ws.Close()
			return nil, fmt.Errorf("invalid store path: %w", err)
		}
		storePath = abs
	}

	ws.store = jsonstore.New(storePath, jsonstore.WithBackup(cfg.Store.Backup))
	ws.manager = usecase.NewManager(ws.store,
		usecase.WithCredentials(verifier),
		usecase.WithReferenceCheck(cfg.Reservations.CheckReferences),
		usecase.WithLogger(log),
	)

	log.Debug("workspace.opened", "root", root, "store", storePath, "hasher", cfg.Auth.Hasher)

	if err := ws.manager.Open(ctx); err != nil {
		ws.Close()
		return nil, err
	}
	return ws, nil
}

func (w *workspaceCtx) Close() {
	if w.cleanup != nil {
		_ = w.cleanup()
		w.cleanup = nil
	}
}

// resolveWorkspaceRoot prefers the flag, then the nearest innkeep.yaml, then
// the working directory itself (defaults apply without a config file).
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	loc, err := workspacefinder.NewFinder().Resolve(wd)
	if err != nil {
		return "", err
	}
	return loc.Root, nil
}
