package driven

import (
	"context"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
)

// RepositoryLister enumerates the repositories owned by a user.
type RepositoryLister interface {
	// ListRepositories returns the repositories owned by username.
	// Only the first page of results is consumed; accounts with more
	// repositories than one page holds are under-listed.
	ListRepositories(ctx context.Context, username string) ([]domain.Repository, error)
}

// ArchiveFetcher downloads one repository as a ZIP archive.
type ArchiveFetcher interface {
	// FetchArchive streams the archive for owner/repo into destDir and
	// returns the written path and byte count. A failed download must
	// leave no partial file behind.
	FetchArchive(ctx context.Context, owner, repo, destDir string) (string, int64, error)
}

// Pacer enforces minimum spacing between outbound requests.
type Pacer interface {
	// Wait blocks until it is safe to issue the next request.
	Wait(ctx context.Context) error
}

// Session is an authenticated GitHub handle owned by the process for the
// duration of one backup run. Sessions are used strictly sequentially.
type Session interface {
	RepositoryLister
	ArchiveFetcher
	Pacer
}

// SessionFactory constructs sessions for a set of credentials.
type SessionFactory interface {
	// Create returns a session attaching the given credentials to every
	// request. An empty token yields an unauthenticated session that can
	// only see public repositories.
	Create(ctx context.Context, token string) (Session, error)
}
