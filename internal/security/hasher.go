package security

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Memory-hard on purpose: 32 MiB per hash keeps
// hardware-accelerated guessing expensive while staying cheap enough to run
// on every login.
const (
	argon2Time    = 2
	argon2Memory  = 32 * 1024 // KiB
	argon2Threads = 1
	argon2KeyLen  = 32

	// SaltLength is the per-credential salt size generated at registration.
	SaltLength = 64
)

// Hash derives the argon2id digest of password under salt. The digest is
// stored alongside the salt; the same (password, salt) pair always yields
// the same 32-byte digest.
func Hash(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// Verify re-hashes the candidate password with the stored salt and compares
// the full digest in constant time.
func Verify(password string, salt []byte, digest []byte) bool {
	computed := Hash(password, salt)
	return subtle.ConstantTimeCompare(computed, digest) == 1
}

// NewSalt returns SaltLength bytes from a cryptographically secure source.
// A failing system randomness source is a deployment defect, not a
// per-request condition.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
