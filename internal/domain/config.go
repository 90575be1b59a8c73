package domain

// Hasher names accepted by AuthConfig.Hasher.
const (
	HasherPlain  = "plain"
	HasherBcrypt = "bcrypt"
)

// Config represents the innkeep configuration loaded from innkeep.yaml.
type Config struct {
	Store        StoreConfig
	Auth         AuthConfig
	Reservations ReservationsConfig
	Logging      LoggingConfig
}

type StoreConfig struct {
	// Path is relative to the workspace root unless absolute.
	Path   string
	Backup bool
}

type AuthConfig struct {
	Hasher     string
	BcryptCost int
}

type ReservationsConfig struct {
	CheckReferences bool
}

type LoggingConfig struct {
	Debug bool
}

// DefaultConfig provides sane defaults if innkeep.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{Path: "data.json"},
		Auth: AuthConfig{
			Hasher:     HasherPlain,
			BcryptCost: 10,
		},
		Reservations: ReservationsConfig{CheckReferences: true},
	}
}
