// Package crypto provides the password hashing adapter used by the account
// directory. It owns the single irreversible hash-then-compare discipline of
// the service: plaintext passwords enter, opaque hashes come out, and the
// plaintext is never stored anywhere.
package crypto

// PasswordHasher is the opaque hashing collaborator of the account
// directory. Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash derives an opaque one-way hash from a plaintext password.
	Hash(plain string) (string, error)

	// Verify reports whether the plaintext password matches the stored
	// hash. A mismatch is a normal false result, not an error.
	Verify(plain, hash string) bool
}
