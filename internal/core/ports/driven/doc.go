// Package driven defines the interfaces the core services depend on:
// configuration storage, backup history storage, and the GitHub-facing
// session used to list and download repositories. Adapters implement
// these interfaces.
package driven
