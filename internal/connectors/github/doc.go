// Package github implements the GitHub-facing session used by the
// backup orchestrator: listing the repositories owned by a user and
// downloading each as a ZIP archive.
//
// # Components
//
//   - Client: one authenticated handle per backup run, wrapping a
//     go-github client for the REST API and reusing its http.Client for
//     archive downloads
//   - RateLimiter: paces outbound requests and honours X-RateLimit-*
//     response headers
//   - Factory: builds sessions for the orchestrator
//
// # Authentication
//
// A personal access token (classic or fine-grained) is attached to every
// request via an oauth2 static token source. Without a token the client
// runs unauthenticated: only public repositories are visible and the
// much lower unauthenticated rate limit applies.
//
// # Rate limiting
//
// A token bucket spaces requests at least 500ms apart. The limiter also
// tracks X-RateLimit-Remaining and X-RateLimit-Reset from responses and,
// when the reported quota is nearly exhausted, waits for the reset time
// before issuing further requests.
//
// # Known limitations
//
//   - The repository listing consumes only the first page of search
//     results. Accounts with more repositories than one page holds are
//     silently under-listed.
//   - The archive endpoint hardcodes the "master" branch. Repositories
//     whose default branch has been renamed always fail to download and
//     are reported as HTTP 404 failures.
package github
