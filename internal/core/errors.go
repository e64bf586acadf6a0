// Package core defines the fundamental types and errors for ElderSense.
package core

import "errors"

// Core errors that can occur across the system
var (
	// Storage errors
	ErrReminderNotFound = errors.New("reminder not found")
	ErrMigrationFailed  = errors.New("migration failed")

	// Agent errors
	ErrBadDecision = errors.New("malformed decision from LLM")
)
