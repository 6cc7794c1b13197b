// Package password hashes and checks account passwords with Argon2id,
// stored in PHC string format so parameters can change without breaking
// existing hashes.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrBadHash  = errors.New("malformed password hash")
	ErrMismatch = errors.New("password does not match")
)

// OWASP-recommended Argon2id parameters for interactive logins.
const (
	memoryKiB = 64 * 1024
	passes    = 3
	lanes     = 2
	saltLen   = 16
	keyLen    = 32
)

// Hash derives an Argon2id hash of the password with a fresh random salt.
func Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, passes, memoryKiB, lanes, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memoryKiB, passes, lanes,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters embedded in the stored hash
// and compares in constant time. Returns ErrMismatch on a wrong password.
func Verify(stored, password string) error {
	var (
		version       int
		m, t          uint32
		p             uint8
		b64Salt, b64K string
	)
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrBadHash
	}
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return ErrBadHash
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return ErrBadHash
	}
	b64Salt, b64K = parts[4], parts[5]

	salt, err := base64.RawStdEncoding.DecodeString(b64Salt)
	if err != nil {
		return ErrBadHash
	}
	want, err := base64.RawStdEncoding.DecodeString(b64K)
	if err != nil {
		return ErrBadHash
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	if subtle.ConstantTimeCompare(want, got) != 1 {
		return ErrMismatch
	}
	return nil
}

// Match reports whether password matches the stored hash.
func Match(stored, password string) bool {
	return Verify(stored, password) == nil
}

// Generate returns a random URL-safe password of the given length, used for
// the temporary password assigned when the coach creates a client account.
func Generate(length int) string {
	if length <= 0 {
		length = 16
	}
	raw := make([]byte, (length*3+3)/4+3)
	if _, err := rand.Read(raw); err != nil {
		panic(fmt.Errorf("generate password: %w", err))
	}
	return base64.RawURLEncoding.EncodeToString(raw)[:length]
}
