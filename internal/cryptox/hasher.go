// Package cryptox implements the one-way credential digests stored in the
// users table. A digest is a lowercase hex string; equal inputs always give
// equal digests, so credentials are checked by comparing digests in SQL.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	AlgorithmSHA256 = "sha256"
	AlgorithmArgon2 = "argon2"
)

// Hasher turns a plaintext password into a fixed-length hex digest.
type Hasher interface {
	Hash(password string) string
}

// SHA256Hasher produces plain SHA-256 digests (64 hex chars).
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Argon2Hasher derives an Argon2id key using a server-wide pepper as salt.
type Argon2Hasher struct {
	pepper  []byte
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func NewArgon2Hasher(pepper string) *Argon2Hasher {
	return &Argon2Hasher{
		pepper:  []byte(pepper),
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
	}
}

func (h *Argon2Hasher) Hash(password string) string {
	key := argon2.IDKey([]byte(password), h.pepper, h.time, h.memory, h.threads, h.keyLen)
	return hex.EncodeToString(key)
}

// NewHasher returns the hasher for a configured algorithm name.
func NewHasher(algorithm, pepper string) (Hasher, error) {
	switch algorithm {
	case "", AlgorithmSHA256:
		return SHA256Hasher{}, nil
	case AlgorithmArgon2:
		if pepper == "" {
			return nil, errors.New("argon2 hasher requires a pepper")
		}
		return NewArgon2Hasher(pepper), nil
	}
	return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
}
