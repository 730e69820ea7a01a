package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "werewolf-setup"

func TestEdDSASignAndVerify(t *testing.T) {
	signer, err := jwtx.GenerateEdDSASigner("test-key-eddsa")
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	claims := jwtx.NewDeviceClaims("device-1", []string{jwtx.ScopeSetupWrite}, 5*time.Minute, exampleIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	jwks := keyset.PublicJWKS()
	require.Len(t, jwks.Keys, 1)
	require.Equal(t, "OKP", jwks.Keys[0].Kty)
	require.Equal(t, "Ed25519", jwks.Keys[0].Crv)

	parsed, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "device-1", parsed.Subject)
	require.Equal(t, []string{jwtx.ScopeSetupWrite}, parsed.Scopes)
	require.Equal(t, claims.ID, parsed.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	signer, err := jwtx.GenerateEdDSASigner("k1")
	require.NoError(t, err)
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewDeviceClaims("d", nil, time.Minute, "someone-else", time.Now()))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("unknown kid", func(t *testing.T) {
		other, err := jwtx.GenerateEdDSASigner("k2")
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewDeviceClaims("d", nil, time.Minute, exampleIssuer, time.Now()))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify("not.a.jwt")
		require.Error(t, err)
	})
}

func TestEdDSASignerPEMRoundTrip(t *testing.T) {
	signer, err := jwtx.GenerateEdDSASigner("k1")
	require.NoError(t, err)

	pemKey, err := signer.PrivateKeyPEM()
	require.NoError(t, err)

	loaded, err := jwtx.NewSignerEdDSA("k1", pemKey)
	require.NoError(t, err)
	require.Equal(t, signer.PublicJWK(), loaded.PublicJWK())

	_, err = jwtx.NewSignerEdDSA("k1", []byte("not pem"))
	require.Error(t, err)
}
