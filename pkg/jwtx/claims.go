package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Both can be overridden through config.
const (
	// DefaultDeviceTokenTTL covers a device that keeps the setup page open
	// across several game nights.
	DefaultDeviceTokenTTL = 30 * 24 * time.Hour

	// DefaultHostTokenTTL covers a single game session.
	DefaultHostTokenTTL = 12 * time.Hour
)

// Scopes carried in issued tokens.
const (
	// ScopeSetupWrite allows editing the catalog, quantities and creating games.
	ScopeSetupWrite = "setup:write"

	// ScopeGameHost identifies the moderator of one game on the game server.
	ScopeGameHost = "game:host"
)

// Claims are the token claims shared by the setup service and the game server.
type Claims struct {
	jwt.RegisteredClaims

	// Permission Scopes "setup:write", "game:host"
	Scopes []string `json:"scopes,omitempty"`

	// GameCode is the access code of the game a host token was minted for.
	GameCode string `json:"game,omitempty"`
}

// NewDeviceClaims builds the claims for a setup device token. The subject
// is the device id that scopes every stored catalog.
func NewDeviceClaims(deviceID string, scopes []string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered(deviceID, ttl, issuer, now),
		Scopes:           scopes,
	}
}

// NewHostClaims builds the claims handed to the game server for the moderator.
func NewHostClaims(playerID, gameCode string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered(playerID, ttl, issuer, now),
		Scopes:           []string{ScopeGameHost},
		GameCode:         gameCode,
	}
}

func registered(subject string, ttl time.Duration, issuer string, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether the claims carry the given scope.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryWithLeeway(0)
}

// ValidateExpiryWithLeeway adds a small grace period for clock skew.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}

	return nil
}
