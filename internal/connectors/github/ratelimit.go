package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// MinRequestDelay is the minimum wall-clock spacing between outbound
	// requests. This keeps the tool under GitHub's unauthenticated and
	// secondary rate limits.
	MinRequestDelay = 500 * time.Millisecond

	// GitHubRateLimit is the authenticated rate limit (5000/hour).
	GitHubRateLimit = 5000

	// MinBuffer is the minimum remaining requests before waiting for reset.
	MinBuffer = 10

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"
)

// RateLimiter paces outbound requests with a token bucket sized to the
// minimum inter-request delay, and reactively honours the X-RateLimit-*
// headers GitHub returns. The batch loop is strictly sequential, so the
// bucket guarantees no two requests start less than the minimum delay
// apart.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int       // From API header
	limit     int       // From API header
	resetTime time.Time // From API header
	bucket    *rate.Limiter
	minBuffer int
}

// NewRateLimiter creates a rate limiter spacing requests at least
// minDelay apart. A zero minDelay falls back to MinRequestDelay.
func NewRateLimiter(minDelay time.Duration) *RateLimiter {
	if minDelay <= 0 {
		minDelay = MinRequestDelay
	}
	return &RateLimiter{
		remaining: GitHubRateLimit, // Assume full quota initially
		limit:     GitHubRateLimit,
		bucket:    rate.NewLimiter(rate.Every(minDelay), 1),
		minBuffer: MinBuffer,
	}
}

// Wait blocks until it's safe to make a request.
// It enforces the minimum inter-request spacing and, when the reported
// quota is nearly exhausted, waits for the reset time.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	resetTime := r.resetTime
	r.mu.Unlock()

	if remaining < r.minBuffer && time.Now().Before(resetTime) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(resetTime)):
		}
	}

	return nil
}

// UpdateFromResponse updates rate limit state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if limit := resp.Header.Get(HeaderRateLimit); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil {
			r.limit = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.resetTime = time.Unix(val, 0)
		}
	}
}

// Remaining returns the current remaining requests.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the rate limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// ResetTime returns the rate limit reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}
