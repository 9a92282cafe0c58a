// Package sqlite provides the SQLite-backed backup history store.
//
// One row is written per backup run and one per repository result, so
// `ghvault history` can answer what was backed up when, and which
// repositories failed. History is bookkeeping only: the orchestrator
// treats store failures as non-fatal.
package sqlite
