package jwtx

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// SigningKeyRecord is a signing key as persisted by a KeyStore.
type SigningKeyRecord struct {
	Kid           string
	Algorithm     string
	PrivateKeyPEM []byte
	CreatedAt     time.Time
}

// KeyStore is the minimal persistence the KeyManager needs. It lets the
// jwtx package reuse keys across restarts without importing a store package.
type KeyStore interface {
	ListSigningKeys(ctx context.Context) ([]SigningKeyRecord, error)
	CreateSigningKey(ctx context.Context, key SigningKeyRecord) error
}

// KeyManagerOptions configures a KeyManager.
type KeyManagerOptions struct {
	// Issuer is stamped into and validated against every token.
	Issuer string

	// Store persists the signing key. Nil means keys are ephemeral and every
	// issued token becomes invalid on restart.
	Store KeyStore
}

// KeyManager wires a signer, the KeySet it publishes and a verifier bound
// to the same keys.
type KeyManager struct {
	Signer   Signer
	Verifier Verifier
	KeySet   *KeySet
}

// NewKeyManager loads every stored key for verification and signs with the
// newest one. When no key exists a new Ed25519 key is generated and, if a
// store is configured, persisted.
func NewKeyManager(ctx context.Context, opts KeyManagerOptions) (*KeyManager, error) {
	if opts.Issuer == "" {
		return nil, errors.New("jwtx: Issuer is required")
	}

	keyset := NewKeySet()
	var signer Signer

	if opts.Store != nil {
		records, err := opts.Store.ListSigningKeys(ctx)
		if err != nil {
			return nil, fmt.Errorf("jwtx: list signing keys: %w", err)
		}
		for _, rec := range records {
			if rec.Algorithm != AlgorithmEdDSA {
				continue
			}
			s, err := NewSignerEdDSA(rec.Kid, rec.PrivateKeyPEM)
			if err != nil {
				return nil, fmt.Errorf("jwtx: load signing key %q: %w", rec.Kid, err)
			}
			if err := keyset.AddSigner(s); err != nil {
				return nil, err
			}
			// Records are returned oldest first.
			signer = s
		}
	}

	if signer == nil {
		kid, err := generateRandomKeyID()
		if err != nil {
			return nil, err
		}
		s, err := GenerateEdDSASigner(kid)
		if err != nil {
			return nil, err
		}
		if opts.Store != nil {
			pemKey, err := s.PrivateKeyPEM()
			if err != nil {
				return nil, err
			}
			err = opts.Store.CreateSigningKey(ctx, SigningKeyRecord{
				Kid:           kid,
				Algorithm:     AlgorithmEdDSA,
				PrivateKeyPEM: pemKey,
				CreatedAt:     time.Now().UTC(),
			})
			if err != nil {
				return nil, fmt.Errorf("jwtx: persist signing key: %w", err)
			}
		}
		if err := keyset.AddSigner(s); err != nil {
			return nil, err
		}
		signer = s
	}

	return &KeyManager{
		Signer:   signer,
		Verifier: NewVerifierEdDSA(keyset, opts.Issuer, nil),
		KeySet:   keyset,
	}, nil
}

// IsReady returns true if the KeyManager has valid keys loaded.
func (km *KeyManager) IsReady() bool {
	return km.KeySet.IsReady()
}

// generateRandomKeyID creates a key identifier of the form "werewolf-{128 bit token}".
func generateRandomKeyID() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("jwtx: generate key ID: %w", err)
	}
	return "werewolf-" + base64.RawURLEncoding.EncodeToString(b[:]), nil
}
