package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show past backup runs",
	Long: `Lists recent backup runs. With a run ID, shows the per-repository
results of that run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	ctx := context.Background()

	if len(args) > 0 {
		return showRun(ctx, cmd, args[0])
	}
	return listRuns(ctx, cmd)
}

func listRuns(ctx context.Context, cmd *cobra.Command) error {
	runs, err := historyStore.ListRuns(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No backup runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %s  %d ok, %d failed, %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Username,
			run.Succeeded,
			run.Failed,
			bytesize.New(float64(run.TotalBytes)))
	}
	return nil
}

func showRun(ctx context.Context, cmd *cobra.Command, runID string) error {
	run, err := historyStore.GetRun(ctx, runID)
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	cmd.Printf("Run %s by %s, started %s\n", run.ID, run.Username,
		run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("%d succeeded, %d failed, %s total\n\n",
		run.Succeeded, run.Failed, bytesize.New(float64(run.TotalBytes)))

	results, err := historyStore.ListResults(ctx, run.ID)
	if err != nil {
		return fmt.Errorf("list results: %w", err)
	}

	for _, r := range results {
		if r.Error != "" {
			cmd.Printf("  [%s] %s: %s\n", r.Status, r.Repo, r.Error)
			continue
		}
		cmd.Printf("  [%s] %s: %s (%s)\n", r.Status, r.Repo, r.ArchivePath,
			bytesize.New(float64(r.Bytes)))
	}
	return nil
}
