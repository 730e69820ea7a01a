// Package cryptox protects signing keys at rest.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for deriving the AES key from the master secret. The
// salt is fixed so the same secret always opens previously sealed keys.
const (
	kdfTime    = 3
	kdfMemory  = 64 * 1024
	kdfThreads = 2
	kdfKeyLen  = 32
)

var kdfSalt = []byte("werewolf-setup/signing-keys/v1")

var ErrMasterKeyTooShort = errors.New("cryptox: master key must be at least 16 bytes")

// KeyCipher seals private key material with AES-256-GCM before it is stored.
// Sealed output is [12-byte nonce][ciphertext][16-byte tag].
type KeyCipher struct {
	aead cipher.AEAD
}

// NewKeyCipher derives the AES key from secret with Argon2id.
func NewKeyCipher(secret []byte) (*KeyCipher, error) {
	secret = bytes.TrimSpace(secret)
	if len(secret) < 16 {
		return nil, ErrMasterKeyTooShort
	}

	key := argon2.IDKey(secret, kdfSalt, kdfTime, kdfMemory, kdfThreads, kdfKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return &KeyCipher{aead: aead}, nil
}

// LoadKeyCipher reads the master secret from a file.
func LoadKeyCipher(path string) (*KeyCipher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read master key file: %w", err)
	}
	return NewKeyCipher(data)
}

func (c *KeyCipher) Seal(plain []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plain, nil), nil
}

func (c *KeyCipher) Open(sealed []byte) ([]byte, error) {
	n := c.aead.NonceSize()
	if len(sealed) < n+c.aead.Overhead() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	plain, err := c.aead.Open(nil, sealed[:n], sealed[n:], nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plain, nil
}
