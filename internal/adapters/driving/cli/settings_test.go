package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
)

func setupSettingsTest(mock *mockSettingsService) func() {
	old := settingsService
	settingsService = mock
	return func() {
		settingsService = old
		tokenFlag = ""
	}
}

func TestSettingsCmd_Show(t *testing.T) {
	cleanup := setupSettingsTest(&mockSettingsService{settings: domain.Settings{
		Username:     "octocat",
		Token:        "ghp_" + strings.Repeat("a", 36),
		DownloadPath: "/tmp/repos",
	}})
	defer cleanup()

	buf, err := execute("settings", "show")

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Username:      octocat")
	assert.Contains(t, out, "Download path: /tmp/repos")
	assert.Contains(t, out, "Token:         (set)")
	assert.NotContains(t, out, "ghp_", "token value must never be printed")
}

func TestSettingsCmd_Show_UnsetToken(t *testing.T) {
	cleanup := setupSettingsTest(&mockSettingsService{})
	defer cleanup()

	buf, err := execute("settings")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Token:         (not set)")
}

func TestSettingsCmd_SetUsername(t *testing.T) {
	mock := &mockSettingsService{}
	cleanup := setupSettingsTest(mock)
	defer cleanup()

	buf, err := execute("settings", "set", "username", "octocat")

	require.NoError(t, err)
	assert.Equal(t, "octocat", mock.username)
	assert.Contains(t, buf.String(), "username updated")
}

func TestSettingsCmd_SetDownloadPath(t *testing.T) {
	mock := &mockSettingsService{}
	cleanup := setupSettingsTest(mock)
	defer cleanup()

	_, err := execute("settings", "set", "download_path", "/mnt/backups")

	require.NoError(t, err)
	assert.Equal(t, "/mnt/backups", mock.downloadPath)
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	cleanup := setupSettingsTest(&mockSettingsService{})
	defer cleanup()

	_, err := execute("settings", "set", "colour", "green")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown settings key")
}

func TestSettingsCmd_SetPropagatesValidationError(t *testing.T) {
	cleanup := setupSettingsTest(&mockSettingsService{setErr: domain.ErrInvalidUsername})
	defer cleanup()

	_, err := execute("settings", "set", "username", "-bad-")

	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
}

func TestSettingsCmd_TokenFlag(t *testing.T) {
	mock := &mockSettingsService{}
	cleanup := setupSettingsTest(mock)
	defer cleanup()

	token := "ghp_" + strings.Repeat("b", 36)
	buf, err := execute("settings", "token", "--token", token)

	require.NoError(t, err)
	assert.Equal(t, token, mock.token)
	assert.Contains(t, buf.String(), "Token updated")
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	old := settingsService
	settingsService = nil
	defer func() { settingsService = old }()

	_, err := execute("settings", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
