// Package password provides one-way hashing for stored credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from a plaintext password. The returned
// string encodes the salt and cost factor alongside the digest, so no extra
// state is needed to verify it later.
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plain matches the stored hash. A malformed hash is
// treated as a mismatch, never an error.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
