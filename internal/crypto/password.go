// Package crypto provides the salted one-way password derivation used
// for stored credentials. PBKDF2-HMAC-SHA256 with a per-user random
// salt; verification re-derives with the stored salt and compares in
// constant time.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 24
	keyBytes   = 32
	iterations = 210_000
)

// HashPassword derives a hash from plaintext under a fresh random salt.
// Both return values are base64 strings suitable for column storage.
func HashPassword(plaintext string) (salt, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	salt = base64.StdEncoding.EncodeToString(raw)
	return salt, derive(plaintext, raw), nil
}

// HashPasswordWithSalt re-derives the hash deterministically for
// verification against a stored credential.
func HashPasswordWithSalt(plaintext, salt string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return "", err
	}
	return derive(plaintext, raw), nil
}

// VerifyPassword reports whether plaintext derives to hash under salt.
func VerifyPassword(plaintext, salt, hash string) bool {
	derived, err := HashPasswordWithSalt(plaintext, salt)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(derived), []byte(hash)) == 1
}

func derive(plaintext string, salt []byte) string {
	key := pbkdf2.Key([]byte(plaintext), salt, iterations, keyBytes, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}
