// Package credentials provides the secret sealing strategies selectable from
// innkeep.yaml (auth.hasher).
package credentials

import (
	"fmt"

	"github.com/aalvaropc/innkeep/internal/domain"
	"github.com/aalvaropc/innkeep/internal/ports"
)

// FromConfig picks the verifier named by cfg.Hasher.
func FromConfig(cfg domain.AuthConfig) (ports.CredentialVerifier, error) {
	switch cfg.Hasher {
	case "", domain.HasherPlain:
		return Plain{}, nil
	case domain.HasherBcrypt:
		return NewBcrypt(cfg.BcryptCost), nil
	default:
		return nil, &domain.OpError{
			Op:   "credentials.from_config",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown hasher %q: %w", cfg.Hasher, domain.ErrInvalidConfig),
		}
	}
}
