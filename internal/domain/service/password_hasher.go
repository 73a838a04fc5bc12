package service

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns the hash of a plaintext password.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash. A nil error
	// means the password matches.
	Compare(hashedPassword, password string) error
}
