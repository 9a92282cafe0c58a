package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghvault-cli/internal/logger"
)

var backupDir string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Download all repositories as ZIP archives",
	Long: `Lists every repository owned by the configured GitHub username and
downloads each as a ZIP archive into the download directory.

Without a token only public repositories are visible. Individual
download failures are logged and skipped; the batch always runs to the
end of the list.`,
	RunE: runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupDir, "dir", "", "override the configured download directory")
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, _ []string) error {
	if backupOrchestrator == nil || settingsService == nil {
		return errors.New("backup service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if backupDir != "" {
		settings.DownloadPath = backupDir
	}

	// An empty token is allowed (public repositories only); everything
	// else must validate before any network activity.
	if err := settings.Validate(false); err != nil {
		logger.Error("Invalid configuration: %v", err)
		return fmt.Errorf("invalid configuration in %s: %w", settingsService.Path(), err)
	}

	ctx := context.Background()

	logger.Info("Download started")
	run, err := backupOrchestrator.Run(ctx, settings)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	logger.Info("Download ended")

	cmd.Printf("Backed up %d repositories (%d failed), %s total.\n",
		run.Succeeded, run.Failed, bytesize.New(float64(run.TotalBytes)))
	return nil
}
