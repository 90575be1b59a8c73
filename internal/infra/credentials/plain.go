package credentials

import (
	"crypto/subtle"

	"github.com/aalvaropc/innkeep/internal/ports"
)

// Plain stores secrets exactly as typed. It is the behavior of stores written
// before hashing was configurable.
type Plain struct{}

var _ ports.CredentialVerifier = Plain{}

func (Plain) Seal(secret string) (string, error) { return secret, nil }

func (Plain) Verify(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
