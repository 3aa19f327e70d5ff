package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intlakaa/backoffice/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real one.
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("abcdef")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("abcdef", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrMismatch)
}

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	a, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestVerifyPasswordRejectsMalformedDigest(t *testing.T) {
	for _, digest := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
	} {
		err := cryptox.VerifyPassword("whatever", digest)
		require.Error(t, err)
		require.NotErrorIs(t, err, cryptox.ErrMismatch)
	}
}
