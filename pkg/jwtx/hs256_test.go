package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/empdir/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	h := jwtx.NewHS256([]byte("test-secret"), "empdir")

	now := time.Now().UTC()
	claims := jwtx.NewIdentityClaims("user-1", "alice", "alice@x.com", "empdir", jwtx.DefaultTokenTTL, now)

	token, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@x.com", got.Email)
	require.Equal(t, "empdir", got.Issuer)
	require.WithinDuration(t, now.Add(jwtx.DefaultTokenTTL), got.ExpiresAt.Time, time.Second)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := jwtx.NewHS256([]byte("secret-a"), "")
	verifier := jwtx.NewHS256([]byte("secret-b"), "")

	token, err := signer.Sign(jwtx.NewIdentityClaims("u", "n", "e", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsExpired(t *testing.T) {
	h := jwtx.NewHS256([]byte("test-secret"), "")

	past := time.Now().UTC().Add(-48 * time.Hour)
	token, err := h.Sign(jwtx.NewIdentityClaims("u", "n", "e", "", 24*time.Hour, past))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	h := jwtx.NewHS256([]byte("test-secret"), "")

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := h.Verify(raw)
		require.Error(t, err, "input %q", raw)
	}
}

func TestVerifyEnforcesIssuer(t *testing.T) {
	signer := jwtx.NewHS256([]byte("test-secret"), "other-issuer")
	verifier := jwtx.NewHS256([]byte("test-secret"), "empdir")

	token, err := signer.Sign(jwtx.NewIdentityClaims("u", "n", "e", "other-issuer", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}
