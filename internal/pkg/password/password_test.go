package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	ok, err := Verify("secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)

	ok, err := Verify("not-the-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_SaltedOutputsDiffer(t *testing.T) {
	h1, err := Hash("secret123")
	require.NoError(t, err)
	h2, err := Hash("secret123")
	require.NoError(t, err)

	// Different salts, different encodings — both still verify.
	assert.NotEqual(t, h1, h2)
	for _, h := range []string{h1, h2} {
		ok, err := Verify("secret123", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	ok, err := Verify("secret123", "not-a-bcrypt-hash")
	assert.False(t, ok)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadHash)
}
