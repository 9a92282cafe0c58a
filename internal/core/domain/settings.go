package domain

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Settings holds the backup configuration read from the config file.
type Settings struct {
	// Username is the GitHub account whose repositories are backed up.
	Username string

	// Token is a GitHub personal access token. May be empty, in which
	// case only public repositories are visible.
	Token string

	// DownloadPath is the absolute directory archives are written to.
	DownloadPath string
}

// Validate checks all settings fields and returns every failure found,
// joined. When requireToken is false an empty token passes; a non-empty
// token must still match a recognised token shape either way.
func (s Settings) Validate(requireToken bool) error {
	var errs []error

	if !ValidUsername(s.Username) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidUsername, s.Username))
	}

	if s.Token == "" {
		if requireToken {
			errs = append(errs, ErrAuthRequired)
		}
	} else if !ValidToken(s.Token) {
		errs = append(errs, ErrInvalidToken)
	}

	if s.DownloadPath == "" || !filepath.IsAbs(s.DownloadPath) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidDownloadPath, s.DownloadPath))
	}

	return errors.Join(errs...)
}

// Authenticated reports whether a token is configured.
func (s Settings) Authenticated() bool {
	return s.Token != ""
}
