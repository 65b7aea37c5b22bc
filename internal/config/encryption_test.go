package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptToken(t *testing.T) {
	t.Setenv("SHOPSYNC_ENCRYPTION_KEY", "test-key")

	encrypted, err := EncryptToken("super-secret-token")
	require.NoError(t, err)
	assert.True(t, IsEncrypted(encrypted))
	assert.NotContains(t, encrypted, "super-secret-token")

	decrypted, err := DecryptToken(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "super-secret-token", decrypted)
}

func TestEncryptTokenIdempotent(t *testing.T) {
	t.Setenv("SHOPSYNC_ENCRYPTION_KEY", "test-key")

	once, err := EncryptToken("token")
	require.NoError(t, err)
	twice, err := EncryptToken(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestDecryptPlaintextPassesThrough(t *testing.T) {
	decrypted, err := DecryptToken("plain-token")
	require.NoError(t, err)
	assert.Equal(t, "plain-token", decrypted)
}

func TestEncryptEmptyToken(t *testing.T) {
	encrypted, err := EncryptToken("")
	require.NoError(t, err)
	assert.Empty(t, encrypted)
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	t.Setenv("SHOPSYNC_ENCRYPTION_KEY", "key-one")
	encrypted, err := EncryptToken("token")
	require.NoError(t, err)

	t.Setenv("SHOPSYNC_ENCRYPTION_KEY", "key-two")
	_, err = DecryptToken(encrypted)
	assert.Error(t, err)
}

func TestIsEncrypted(t *testing.T) {
	assert.True(t, IsEncrypted("ENC[abc]"))
	assert.False(t, IsEncrypted("abc"))
	assert.False(t, IsEncrypted("ENC[abc"))
}
