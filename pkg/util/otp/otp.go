// Package otp generates and checks the short-lived secrets used around the
// portal: numeric email-verification codes, password-reset tokens and
// session confirmation tokens.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// DefaultDigits is the length of numeric verification codes.
const DefaultDigits = 6

var ErrMismatch = errors.New("code does not match")

// Generate returns a numeric code of n digits, drawn from crypto/rand.
// Each digit is sampled independently so leading zeros are possible.
func Generate(n int) (string, error) {
	if n < 1 {
		return "", errors.New("code length must be positive")
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		// 250 is the largest multiple of 10 below 256; resample the few
		// bytes above it to keep digits uniform.
		for b >= 250 {
			one := make([]byte, 1)
			if _, err := rand.Read(one); err != nil {
				return "", fmt.Errorf("read random bytes: %w", err)
			}
			b = one[0]
		}
		buf[i] = '0' + b%10
	}
	return string(buf), nil
}

// GenerateDefault returns a standard 6-digit verification code.
func GenerateDefault() (string, error) {
	return Generate(DefaultDigits)
}

// GenerateHex returns 2*nBytes hex characters of randomness. Used for
// opaque single-use tokens (password reset, session confirmation).
func GenerateHex(nBytes int) (string, error) {
	if nBytes < 1 {
		return "", errors.New("byte length must be positive")
	}
	buf := make([]byte, nBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash returns the hex-encoded SHA-256 of a code. Codes are stored hashed
// so a leaked cache dump cannot be replayed.
func Hash(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(sum[:])
}

// Verify checks a plaintext code against a stored hash in constant time.
func Verify(storedHash, code string) error {
	if subtle.ConstantTimeCompare([]byte(storedHash), []byte(Hash(code))) != 1 {
		return ErrMismatch
	}
	return nil
}
