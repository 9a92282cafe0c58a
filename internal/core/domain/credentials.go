package domain

import "regexp"

// GitHub restricts usernames to alphanumeric segments joined by single
// hyphens, with no leading or trailing hyphen.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

// tokenPattern matches the two personal access token shapes GitHub
// currently issues: classic tokens (ghp_/ghs_ followed by 36 alphanumeric
// characters) and fine-grained tokens (github_pat_ followed by a
// 22-character segment, an underscore, and a 59-character segment).
var tokenPattern = regexp.MustCompile(
	`^(gh[ps]_[a-zA-Z0-9]{36}|github_pat_[a-zA-Z0-9]{22}_[a-zA-Z0-9]{59})$`)

// ValidUsername reports whether s is a well-formed GitHub username.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidToken reports whether s is a well-formed GitHub personal access
// token. An empty string is not a valid token; whether an empty token is
// acceptable (unauthenticated access) is the caller's policy, not the
// validator's.
func ValidToken(s string) bool {
	return tokenPattern.MatchString(s)
}
