// Package secret seals credential passwords before they are stored.
package secret

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrOpen is returned when a sealed value cannot be authenticated.
var ErrOpen = errors.New("secret: cannot open sealed value")

// Sealer encrypts short strings with a fixed symmetric key.
// Sealed values are the random nonce followed by the secretbox output.
type Sealer struct {
	key  [32]byte
	rand io.Reader
}

// New creates a Sealer for the given key.
func New(key [32]byte) *Sealer {
	return &Sealer{key: key, rand: rand.Reader}
}

// Seal encrypts plaintext. An empty plaintext seals to nil so optional
// passwords stay NULL in storage.
func (s *Sealer) Seal(plaintext string) ([]byte, error) {
	if plaintext == "" {
		return nil, nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(s.rand, nonce[:]); err != nil {
		return nil, fmt.Errorf("secret: read nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key), nil
}

// Open decrypts a value produced by Seal. Nil or empty input opens to "".
func (s *Sealer) Open(sealed []byte) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}
	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", ErrOpen
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plain, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrOpen
	}
	return string(plain), nil
}
