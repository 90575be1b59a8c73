package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/innkeep/internal/domain"
)

// LoadConfig loads innkeep.yaml from the workspace root and applies defaults.
// A missing file is not an error: the defaults are returned as-is.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Innkeep.Store.Path != "" {
		cfg.Store.Path = y.Innkeep.Store.Path
	}
	if y.Innkeep.Store.Backup != nil {
		cfg.Store.Backup = *y.Innkeep.Store.Backup
	}
	if y.Innkeep.Auth.Hasher != "" {
		cfg.Auth.Hasher = strings.ToLower(strings.TrimSpace(y.Innkeep.Auth.Hasher))
	}
	if y.Innkeep.Auth.BcryptCost != 0 {
		cfg.Auth.BcryptCost = y.Innkeep.Auth.BcryptCost
	}
	if y.Innkeep.Reservations.CheckReferences != nil {
		cfg.Reservations.CheckReferences = *y.Innkeep.Reservations.CheckReferences
	}
	if y.Innkeep.Logging.Debug != nil {
		cfg.Logging.Debug = *y.Innkeep.Logging.Debug
	}

	switch cfg.Auth.Hasher {
	case domain.HasherPlain, domain.HasherBcrypt:
	default:
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("auth.hasher %q (expected plain|bcrypt): %w", cfg.Auth.Hasher, domain.ErrInvalidConfig),
		}
	}

	return cfg, nil
}

// StorePath resolves the configured store path against the workspace root.
func StorePath(root string, cfg domain.Config) string {
	p := cfg.Store.Path
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

type yamlConfig struct {
	Innkeep struct {
		Store struct {
			Path   string `yaml:"path"`
			Backup *bool  `yaml:"backup"`
		} `yaml:"store"`

		Auth struct {
			Hasher     string `yaml:"hasher"`
			BcryptCost int    `yaml:"bcrypt_cost"`
		} `yaml:"auth"`

		Reservations struct {
			CheckReferences *bool `yaml:"check_references"`
		} `yaml:"reservations"`

		Logging struct {
			Debug *bool `yaml:"debug"`
		} `yaml:"logging"`
	} `yaml:"innkeep"`
}
