package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ghvault-cli/internal/logger"
)

// Ensure BackupOrchestrator implements the interface.
var _ driving.BackupOrchestrator = (*BackupOrchestrator)(nil)

// BackupOrchestrator runs the backup batch: list the user's
// repositories, then download each as a ZIP archive with a minimum
// wall-clock spacing between requests. One failed repository never
// aborts the batch; the failure is logged, recorded, and the loop
// advances. The batch is strictly sequential; the session's pacer is the
// only shared throttle state.
type BackupOrchestrator struct {
	factory driven.SessionFactory
	history driven.HistoryStore
}

// NewBackupOrchestrator creates a backup orchestrator.
// The history store is optional; with nil history, runs are not recorded.
func NewBackupOrchestrator(factory driven.SessionFactory, history driven.HistoryStore) *BackupOrchestrator {
	return &BackupOrchestrator{
		factory: factory,
		history: history,
	}
}

// Run executes one backup batch for the given settings.
func (o *BackupOrchestrator) Run(ctx context.Context, settings domain.Settings) (*domain.BackupRun, error) {
	if !settings.Authenticated() {
		logger.Warn("No GitHub token configured. Falling back to PUBLIC repositories only.")
		logger.Warn("For PRIVATE repositories, add your GitHub token.")
	}

	session, err := o.factory.Create(ctx, settings.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err := os.MkdirAll(settings.DownloadPath, 0755); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	repos, err := session.ListRepositories(ctx, settings.Username)
	if err != nil {
		logger.Error("Failed to retrieve repositories: %v", err)
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	logger.Debug("Listed %d repositories for %s", len(repos), settings.Username)

	run := &domain.BackupRun{
		ID:        uuid.NewString(),
		Username:  settings.Username,
		StartedAt: time.Now(),
	}
	o.saveRun(ctx, *run)

	for _, repo := range repos {
		if err := session.Wait(ctx); err != nil {
			// Only context cancellation reaches here; stop the batch.
			run.FinishedAt = time.Now()
			o.saveRun(ctx, *run)
			return run, fmt.Errorf("throttle wait: %w", err)
		}

		path, written, err := session.FetchArchive(ctx, repo.Owner, repo.Name, settings.DownloadPath)

		result := domain.RepoResult{
			RunID:      run.ID,
			Repo:       repo.Name,
			FinishedAt: time.Now(),
		}
		if err != nil {
			logger.Error("Failed to download %s: %v", repo.Name, err)
			run.Failed++
			result.Status = domain.StatusFailed
			result.Error = err.Error()
		} else {
			logger.Info("%s downloaded to %s", repo.Name, path)
			run.Succeeded++
			run.TotalBytes += written
			result.Status = domain.StatusOK
			result.ArchivePath = path
			result.Bytes = written
		}
		o.saveResult(ctx, result)
	}

	run.FinishedAt = time.Now()
	o.saveRun(ctx, *run)
	return run, nil
}

// saveRun records the run summary. History failures are logged, never fatal.
func (o *BackupOrchestrator) saveRun(ctx context.Context, run domain.BackupRun) {
	if o.history == nil {
		return
	}
	if err := o.history.SaveRun(ctx, run); err != nil {
		logger.Warn("Could not record backup run: %v", err)
	}
}

// saveResult records one repository outcome. Same best-effort policy.
func (o *BackupOrchestrator) saveResult(ctx context.Context, result domain.RepoResult) {
	if o.history == nil {
		return
	}
	if err := o.history.SaveResult(ctx, result); err != nil {
		logger.Warn("Could not record result for %s: %v", result.Repo, err)
	}
}
