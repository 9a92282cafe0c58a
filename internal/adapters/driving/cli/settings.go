package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage backup settings",
	Long: `View and configure the GitHub username, access token and download
directory. Settings are stored in a TOML file under ~/.ghvault.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a settings value",
	Long: `Set a settings value.

Available keys:
  username       - GitHub username owning the repositories to back up
  download_path  - absolute directory archives are written to

The token is set separately with 'ghvault settings token' so it never
appears in shell history.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Set the GitHub personal access token",
	Long: `Set the GitHub personal access token used for API access and private
repository downloads. The token is prompted for with echo disabled.

Create a token at github.com/settings/tokens. Classic tokens need the
'repo' scope for private repositories.`,
	RunE: runSettingsToken,
}

// tokenFlag allows non-interactive token entry, e.g. from a secrets
// manager: ghvault settings token --token "$(pass github/pat)".
var tokenFlag string

func init() {
	settingsTokenCmd.Flags().StringVar(&tokenFlag, "token", "", "token value (omit to be prompted)")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsTokenCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	token := "(not set)"
	if settings.Token != "" {
		token = "(set)"
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Username:      %s\n", settings.Username)
	cmd.Printf("  Token:         %s\n", token)
	cmd.Printf("  Download path: %s\n", settings.DownloadPath)
	cmd.Println()
	cmd.Printf("  Config file:   %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	switch key {
	case "username":
		if err := settingsService.SetUsername(value); err != nil {
			return err
		}
	case "download_path":
		if err := settingsService.SetDownloadPath(value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown settings key %q (available: username, download_path)", key)
	}

	cmd.Printf("%s updated.\n", key)
	return nil
}

func runSettingsToken(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	token := tokenFlag
	if token == "" {
		cmd.Print("GitHub token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}

	if err := settingsService.SetToken(token); err != nil {
		return err
	}

	cmd.Println("Token updated.")
	return nil
}
