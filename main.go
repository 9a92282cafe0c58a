// Command ghvault backs up a GitHub account: it lists every repository
// owned by the configured username and downloads each as a ZIP archive
// into a local directory.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/custodia-labs/ghvault-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ghvault-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ghvault-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ghvault-cli/internal/connectors/github"
	"github.com/custodia-labs/ghvault-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("determine home directory: %w", err)
	}

	configStore, err := file.NewConfigStore("", services.DefaultSettings(home))
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	historyStore, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer historyStore.Close()

	factory := &github.Factory{
		ShowProgress: term.IsTerminal(int(os.Stderr.Fd())),
	}
	orchestrator := services.NewBackupOrchestrator(factory, historyStore)

	cli.SetServices(cli.Services{
		Backup:   orchestrator,
		Settings: settingsService,
		History:  historyStore,
	})

	return cli.Execute()
}
