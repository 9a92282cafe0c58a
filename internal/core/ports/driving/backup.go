package driving

import (
	"context"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
)

// BackupOrchestrator coordinates one backup batch.
type BackupOrchestrator interface {
	// Run lists the repositories owned by settings.Username and downloads
	// each as a ZIP archive into settings.DownloadPath, pacing requests
	// and isolating per-repository failures. It returns a summary of the
	// run. A non-nil error means the batch could not start (listing
	// failed); individual download failures are counted, not returned.
	Run(ctx context.Context, settings domain.Settings) (*domain.BackupRun, error)
}

// SettingsService manages backup settings persistence and validation.
type SettingsService interface {
	// Get returns the current settings, creating the config file with
	// defaults on first run.
	Get() (domain.Settings, error)

	// SetUsername stores the GitHub username.
	SetUsername(username string) error

	// SetToken stores the GitHub personal access token.
	SetToken(token string) error

	// SetDownloadPath stores the archive download directory.
	SetDownloadPath(path string) error

	// Path returns the config file location.
	Path() string
}
