package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/ghvault-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.HistoryStore = (*Store)(nil)

// Store is a SQLite-backed backup history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.ghvault/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".ghvault", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveRun stores or updates a backup run summary.
func (s *Store) SaveRun(ctx context.Context, run domain.BackupRun) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO backup_runs (id, username, started_at, finished_at, succeeded, failed, total_bytes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			finished_at = excluded.finished_at,
			succeeded = excluded.succeeded,
			failed = excluded.failed,
			total_bytes = excluded.total_bytes
	`, run.ID, run.Username, formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.Succeeded, run.Failed, run.TotalBytes)

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// SaveResult stores the outcome for one repository within a run.
func (s *Store) SaveResult(ctx context.Context, result domain.RepoResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO repo_results (run_id, repo, status, archive_path, bytes, error, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, repo) DO UPDATE SET
			status = excluded.status,
			archive_path = excluded.archive_path,
			bytes = excluded.bytes,
			error = excluded.error,
			finished_at = excluded.finished_at
	`, result.RunID, result.Repo, string(result.Status), result.ArchivePath,
		result.Bytes, result.Error, formatTime(result.FinishedAt))

	if err != nil {
		return fmt.Errorf("saving result: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.BackupRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, username, started_at, finished_at, succeeded, failed, total_bytes
		FROM backup_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.BackupRun
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*domain.BackupRun, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, started_at, finished_at, succeeded, failed, total_bytes
		FROM backup_runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return &run, nil
}

// ListResults returns the per-repository results for a run.
func (s *Store) ListResults(ctx context.Context, runID string) ([]domain.RepoResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, repo, status, archive_path, bytes, error, finished_at
		FROM repo_results
		WHERE run_id = ?
		ORDER BY repo
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}
	defer rows.Close()

	var results []domain.RepoResult
	for rows.Next() {
		var r domain.RepoResult
		var status, finishedAt string
		if err := rows.Scan(&r.RunID, &r.Repo, &status, &r.ArchivePath,
			&r.Bytes, &r.Error, &finishedAt); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Status = domain.ResultStatus(status)
		r.FinishedAt = parseTime(finishedAt)
		results = append(results, r)
	}
	return results, rows.Err()
}

// scanRun reads one backup_runs row via the supplied Scan function.
func scanRun(scan func(dest ...any) error) (domain.BackupRun, error) {
	var run domain.BackupRun
	var startedAt, finishedAt string
	if err := scan(&run.ID, &run.Username, &startedAt, &finishedAt,
		&run.Succeeded, &run.Failed, &run.TotalBytes); err != nil {
		return domain.BackupRun{}, err
	}
	run.StartedAt = parseTime(startedAt)
	run.FinishedAt = parseTime(finishedAt)
	return run, nil
}

// formatTime serialises a timestamp as RFC3339 UTC text.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime parses an RFC3339 string, returning the zero time when it
// does not parse.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
