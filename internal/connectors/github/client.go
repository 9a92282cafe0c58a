package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/ghvault-cli/internal/core/domain"
	"github.com/custodia-labs/ghvault-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout. Downloads block
// the calling goroutine for their full duration, so every request
// carries a bounded deadline.
const DefaultTimeout = 30 * time.Second

// defaultArchiveBase is the host serving repository ZIP archives.
const defaultArchiveBase = "https://github.com"

// Ensure Client implements the session interface.
var _ driven.Session = (*Client)(nil)

// Client is an authenticated GitHub handle: a go-github client for the
// REST API plus the underlying http.Client reused for archive downloads.
// One client serves an entire backup run, strictly sequentially.
type Client struct {
	gh          *gh.Client
	httpClient  *http.Client
	rateLimiter *RateLimiter
	archiveBase string

	// ShowProgress draws a progress bar for each download when set.
	ShowProgress bool
}

// NewClient creates a GitHub client. With a token, credentials are
// attached to every request via an oauth2 static token source; with an
// empty token the client is unauthenticated and only sees public
// repositories.
func NewClient(ctx context.Context, token string) *Client {
	var hc *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(ctx, ts)
	} else {
		hc = &http.Client{}
	}
	hc.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(hc),
		httpClient:  hc,
		rateLimiter: NewRateLimiter(MinRequestDelay),
		archiveBase: defaultArchiveBase,
	}
}

// NewClientWithHTTPClient creates a GitHub client on a caller-supplied
// http.Client. Useful for tests.
func NewClientWithHTTPClient(hc *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(hc),
		httpClient:  hc,
		rateLimiter: NewRateLimiter(MinRequestDelay),
		archiveBase: defaultArchiveBase,
	}
}

// ListRepositories returns the repositories owned by username via one
// call to the repository search endpoint scoped to that user. Only the
// first page of results is consumed; accounts whose repositories exceed
// one page are under-listed. See the package documentation.
func (c *Client) ListRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query := "user:" + username
	result, resp, err := c.gh.Search.Repositories(ctx, query, &gh.SearchOptions{})
	if err != nil {
		return nil, c.wrapError(err, "list repositories")
	}

	c.updateRateLimitFromResponse(resp)

	repos := make([]domain.Repository, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		name := r.GetName()
		if name == "" {
			continue
		}
		repos = append(repos, domain.Repository{
			Owner:   r.GetOwner().GetLogin(),
			Name:    name,
			Private: r.GetPrivate(),
		})
	}

	return repos, nil
}

// Wait blocks until the next request may be issued.
func (c *Client) Wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

// Factory builds sessions for the backup orchestrator.
type Factory struct {
	// ShowProgress is propagated to created clients.
	ShowProgress bool
}

var _ driven.SessionFactory = (*Factory)(nil)

// Create returns a client session carrying the given token.
func (f *Factory) Create(ctx context.Context, token string) (driven.Session, error) {
	c := NewClient(ctx, token)
	c.ShowProgress = f.ShowProgress
	return c, nil
}
