// Package services contains the core application services: the backup
// orchestrator that runs the throttled download batch, and the settings
// service that loads, validates and persists configuration.
package services
