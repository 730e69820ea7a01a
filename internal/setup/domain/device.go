package domain

import "time"

// Device is an anonymous client that owns one catalog and one stored
// custom-role collection.
type Device struct {
	ID         string
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// SigningKey is a persisted token signing key.
type SigningKey struct {
	Kid        string
	Algorithm  string
	PrivateKey []byte // PKCS8 PEM
	CreatedAt  time.Time
}
