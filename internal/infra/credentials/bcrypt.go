package credentials

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/aalvaropc/innkeep/internal/ports"
)

// Bcrypt seals secrets as bcrypt hashes. Records still holding a plain secret
// are compared as Plain would, so switching hashers keeps old logins working.
type Bcrypt struct {
	Cost int
}

var _ ports.CredentialVerifier = Bcrypt{}

func NewBcrypt(cost int) Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Bcrypt{Cost: cost}
}

func (b Bcrypt) Seal(secret string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(secret), b.Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b Bcrypt) Verify(stored, plain string) bool {
	if !isBcryptHash(stored) {
		return Plain{}.Verify(stored, plain)
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$"))
}
