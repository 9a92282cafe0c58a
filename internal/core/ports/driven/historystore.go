package driven

import (
	"context"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
)

// HistoryStore persists backup run records and their per-repository
// results. History is best-effort bookkeeping: a store failure must never
// abort a backup batch.
type HistoryStore interface {
	// SaveRun stores or updates a backup run summary.
	SaveRun(ctx context.Context, run domain.BackupRun) error

	// SaveResult stores the outcome for one repository within a run.
	SaveResult(ctx context.Context, result domain.RepoResult) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]domain.BackupRun, error)

	// GetRun retrieves a run by ID. Returns domain.ErrNotFound if absent.
	GetRun(ctx context.Context, id string) (*domain.BackupRun, error)

	// ListResults returns the per-repository results for a run.
	ListResults(ctx context.Context, runID string) ([]domain.RepoResult, error)

	// Close releases the underlying storage.
	Close() error
}
