package domain

import "time"

// ResultStatus is the outcome of a single repository download.
type ResultStatus string

const (
	// StatusOK means the archive was downloaded and written in full.
	StatusOK ResultStatus = "ok"

	// StatusFailed means the download failed and was skipped.
	StatusFailed ResultStatus = "failed"
)

// BackupRun summarises one invocation of the backup batch.
type BackupRun struct {
	ID         string
	Username   string
	StartedAt  time.Time
	FinishedAt time.Time
	Succeeded  int
	Failed     int
	TotalBytes int64
}

// RepoResult records the outcome for one repository within a run.
type RepoResult struct {
	RunID       string
	Repo        string
	Status      ResultStatus
	ArchivePath string
	Bytes       int64
	Error       string
	FinishedAt  time.Time
}
