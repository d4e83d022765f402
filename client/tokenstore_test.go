//go:build unit

package client_test

import (
	"path/filepath"
	"testing"

	"pricing-admin-api/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	store := client.NewMemoryTokenStore()

	_, err := store.Token()
	assert.ErrorIs(t, err, client.ErrNoToken)

	require.NoError(t, store.Save(testToken))
	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, testToken, token)

	require.NoError(t, store.Clear())
	_, err = store.Token()
	assert.ErrorIs(t, err, client.ErrNoToken)
}

func TestFileTokenStore(t *testing.T) {
	t.Run("round trip through a nested path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config", "session-token")
		store := client.NewFileTokenStore(path)

		_, err := store.Token()
		assert.ErrorIs(t, err, client.ErrNoToken)

		require.NoError(t, store.Save(testToken))
		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, testToken, token)
	})

	t.Run("clear tolerates a missing file", func(t *testing.T) {
		store := client.NewFileTokenStore(filepath.Join(t.TempDir(), "absent"))

		assert.NoError(t, store.Clear())
	})

	t.Run("clear removes the token", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session-token")
		store := client.NewFileTokenStore(path)

		require.NoError(t, store.Save(testToken))
		require.NoError(t, store.Clear())

		_, err := store.Token()
		assert.ErrorIs(t, err, client.ErrNoToken)
	})

	t.Run("surrounding whitespace is trimmed on read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session-token")
		store := client.NewFileTokenStore(path)

		require.NoError(t, store.Save(testToken+"\n"))
		token, err := store.Token()
		require.NoError(t, err)
		assert.Equal(t, testToken, token)
	})
}
