package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/empdir/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := cryptox.HashPassword("pw123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("pw123", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("pw124", hash), cryptox.ErrMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, cryptox.VerifyPassword("same-password", a))
	require.NoError(t, cryptox.VerifyPassword("same-password", b))
}

func TestVerifyRejectsMangledHashes(t *testing.T) {
	hash, err := cryptox.HashPassword("pw123")
	require.NoError(t, err)

	cases := map[string]string{
		"empty":         "",
		"not phc":       "plainly-not-a-hash",
		"wrong scheme":  strings.Replace(hash, "argon2id", "bcrypt", 1),
		"wrong version": strings.Replace(hash, "v=19", "v=18", 1),
		"bad salt":      "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}
	for name, mangled := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, cryptox.VerifyPassword("pw123", mangled))
		})
	}
}
