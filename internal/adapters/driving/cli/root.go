// Package cli implements the cobra command tree for ghvault.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ghvault-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// Services wired by main before Execute. Commands check for nil so the
// tree stays testable without a full wiring.
var (
	backupOrchestrator driving.BackupOrchestrator
	settingsService    driving.SettingsService
	historyStore       driven.HistoryStore
)

// Services bundles the dependencies the command tree needs.
type Services struct {
	Backup   driving.BackupOrchestrator
	Settings driving.SettingsService
	History  driven.HistoryStore
}

// SetServices wires the command tree's dependencies.
func SetServices(s Services) {
	backupOrchestrator = s.Backup
	settingsService = s.Settings
	historyStore = s.History
}

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ghvault",
	Short: "Back up a GitHub account's repositories as ZIP archives",
	Long: `ghvault downloads every repository owned by a GitHub account as a
ZIP archive into a local directory, pacing requests to respect GitHub's
rate limits.

Configure your username, token and download directory with
'ghvault settings', then run 'ghvault backup'.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
