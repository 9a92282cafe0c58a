// Package file provides the TOML-backed configuration store.
//
// Configuration lives in a single flat TOML file, by default
// ~/.ghvault/config.toml, created with defaults on first load so users
// have a file to edit. Values are written with restricted permissions
// since the file holds an access token.
package file
