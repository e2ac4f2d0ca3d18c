package implementation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenRepositorySurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "token.json")

	repo := NewFileTokenRepository(path)
	_, found, err := repo.Get(ctx, "docintel_token")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Save(ctx, "docintel_token", "mock-jwt-token"))

	// a fresh instance models a process restart
	reopened := NewFileTokenRepository(path)
	token, found, err := reopened.Get(ctx, "docintel_token")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "mock-jwt-token", token)

	require.NoError(t, reopened.Delete(ctx, "docintel_token"))
	_, found, err = NewFileTokenRepository(path).Get(ctx, "docintel_token")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileTokenRepositoryCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileTokenRepository(path).Get(context.Background(), "docintel_token")
	assert.Error(t, err)
}

func TestFileTokenRepositoryDeleteMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	assert.NoError(t, NewFileTokenRepository(path).Delete(context.Background(), "nope"))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
