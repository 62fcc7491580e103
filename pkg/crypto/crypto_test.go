package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("super-secret")
	require.NoError(t, err)
	require.NotEqual(t, "super-secret", hashed)

	require.NoError(t, ComparePassword(hashed, "super-secret"))
	require.Error(t, ComparePassword(hashed, "wrong-password"))
}

func TestGenerateRandomString(t *testing.T) {
	s1, err := GenerateRandomString()
	require.NoError(t, err)

	s2, err := GenerateRandomString()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}
