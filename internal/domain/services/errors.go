package services

import "errors"

// Sentinel errors for the failure modes the core surfaces to callers.
// "Not found" is deliberately not an error: lookups return nil and delete
// returns false, so only genuinely malformed input produces an error value.
var (
	// ErrValidation reports malformed input reaching the core, such as an
	// unknown card type or a blank name.
	ErrValidation = errors.New("validation failed")

	// ErrImportFormat reports a transfer payload that violates the format
	// contract. Imports failing with this error make no changes at all.
	ErrImportFormat = errors.New("invalid import format")
)
