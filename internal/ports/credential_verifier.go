package ports

// CredentialVerifier decides how secrets are stored and compared.
type CredentialVerifier interface {
	// Seal turns a plain secret into its stored form.
	Seal(secret string) (string, error)
	// Verify reports whether plain matches the stored form.
	Verify(stored, plain string) bool
}
