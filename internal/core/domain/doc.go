// Package domain contains the core business entities for ghvault:
// backup settings, repository descriptors, backup run records, and the
// credential validation rules they depend on.
//
// The domain layer has no dependencies on adapters or external services.
package domain
