// Package errors provides error handling for enumgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints attached to errors
//
// Usage:
//
//	// Wrap with context
//	if err := fsys.WriteFile(path, data); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "create the output directory first")
//
//	// Classify
//	if errors.Is(err, errors.ErrConfig) {
//	    // configuration problem, nothing was written
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
	CombineErrors      = crdb.CombineErrors
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Sentinel errors for the failure classes of a generation pass.
// Wrap these with Mark or Wrap to add context while preserving the class.
var (
	// ErrConfig indicates the settings or modules document is missing or malformed.
	// Fatal for the whole run; nothing is written.
	ErrConfig = New("configuration error")

	// ErrSourceRead indicates a discovered source file could not be read.
	// Fatal for the whole run; nothing is written.
	ErrSourceRead = New("source read error")

	// ErrOutputWrite indicates a module's generated file could not be written.
	// Fatal for that module only.
	ErrOutputWrite = New("output write error")

	// ErrStale indicates generated files differ from what would be generated now
	ErrStale = New("generated files are out of date")

	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")
)

// IsConfigError checks if an error is or wraps ErrConfig
func IsConfigError(err error) bool {
	return err != nil && Is(err, ErrConfig)
}

// IsSourceReadError checks if an error is or wraps ErrSourceRead
func IsSourceReadError(err error) bool {
	return err != nil && Is(err, ErrSourceRead)
}

// IsOutputWriteError checks if an error is or wraps ErrOutputWrite
func IsOutputWriteError(err error) bool {
	return err != nil && Is(err, ErrOutputWrite)
}

// IsStaleError checks if an error is or wraps ErrStale
func IsStaleError(err error) bool {
	return err != nil && Is(err, ErrStale)
}

// NewConfigError creates a configuration error with a formatted message.
// The result matches ErrConfig under Is.
func NewConfigError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfig)
}

// WrapConfig marks err as a configuration error with context
func WrapConfig(err error, context string) error {
	return Mark(Wrap(err, context), ErrConfig)
}

// WrapSourceRead marks err as a source read error with context
func WrapSourceRead(err error, context string) error {
	return Mark(Wrap(err, context), ErrSourceRead)
}

// WrapOutputWrite marks err as an output write error with context
func WrapOutputWrite(err error, context string) error {
	return Mark(Wrap(err, context), ErrOutputWrite)
}
