package services

import (
	"path/filepath"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyUsername     = "github_username"
	KeyToken        = "github_token"
	KeyDownloadPath = "download_path"
)

// DefaultSettings returns the defaults written to a fresh config file:
// empty credentials and a download directory on the user's desktop.
func DefaultSettings(home string) map[string]any {
	return map[string]any{
		KeyUsername:     "",
		KeyToken:        "",
		KeyDownloadPath: filepath.Join(home, "Desktop", "ghvault_repos"),
	}
}

// SettingsService manages backup settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings. The config store creates the file
// with defaults on first load, so Get never fails on a missing file;
// validation is the caller's concern.
func (s *SettingsService) Get() (domain.Settings, error) {
	return domain.Settings{
		Username:     s.configStore.GetString(KeyUsername),
		Token:        s.configStore.GetString(KeyToken),
		DownloadPath: s.configStore.GetString(KeyDownloadPath),
	}, nil
}

// SetUsername stores the GitHub username.
func (s *SettingsService) SetUsername(username string) error {
	if !domain.ValidUsername(username) {
		return domain.ErrInvalidUsername
	}
	return s.configStore.Set(KeyUsername, username)
}

// SetToken stores the GitHub personal access token.
func (s *SettingsService) SetToken(token string) error {
	if !domain.ValidToken(token) {
		return domain.ErrInvalidToken
	}
	return s.configStore.Set(KeyToken, token)
}

// SetDownloadPath stores the archive download directory.
func (s *SettingsService) SetDownloadPath(path string) error {
	if path == "" || !filepath.IsAbs(path) {
		return domain.ErrInvalidDownloadPath
	}
	return s.configStore.Set(KeyDownloadPath, path)
}

// Path returns the config file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}
