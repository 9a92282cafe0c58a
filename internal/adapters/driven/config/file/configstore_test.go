package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir, nil)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesFileWithDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	defaults := map[string]any{
		"github_username": "",
		"github_token":    "",
		"download_path":   "/home/user/Desktop/ghvault_repos",
	}

	store, err := NewConfigStore(tmpDir, defaults)
	require.NoError(t, err)

	// File exists with restricted permissions.
	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	assert.Equal(t, "", store.GetString("github_username"))
	assert.Equal(t, "/home/user/Desktop/ghvault_repos", store.GetString("download_path"))
}

func TestNewConfigStore_ExistingFileWins(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("github_username = \"octocat\"\n"), 0600))

	store, err := NewConfigStore(tmpDir, map[string]any{"github_username": "ignored"})

	require.NoError(t, err)
	assert.Equal(t, "octocat", store.GetString("github_username"))
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir(), nil)
	require.NoError(t, err)

	err = store.Set("test_key", "test_value")
	require.NoError(t, err)

	val, ok := store.Get("test_key")
	assert.True(t, ok)
	assert.Equal(t, "test_value", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir(), nil)
	require.NoError(t, err)

	require.NoError(t, store.Set("string_key", "hello world"))
	assert.Equal(t, "hello world", store.GetString("string_key"))

	// Missing key
	assert.Equal(t, "", store.GetString("nonexistent"))

	// Coerced value
	require.NoError(t, store.Set("int_key", 42))
	assert.Equal(t, "42", store.GetString("int_key"))
}

func TestConfigStore_SetPersistsAcrossLoads(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir, nil)
	require.NoError(t, err)

	require.NoError(t, store.Set("download_path", "/tmp/repos"))

	reloaded, err := NewConfigStore(tmpDir, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/repos", reloaded.GetString("download_path"))
}

func TestConfigStore_Load_RejectsMalformedTOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0600))

	_, err := NewConfigStore(tmpDir, nil)

	assert.Error(t, err)
}
