// Package errors provides custom error types for the pbxproj formatter.
// These errors enable programmatic error checking with errors.Is while
// keeping the offending line content visible to the user, since a fatal
// parse error is the only diagnostic a fail-fast run ever produces.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the formatter
var (
	// ErrMalformedEntry indicates a list member failed its kind-specific
	// extraction pattern
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrUnknownSectionKind indicates a normalizer was invoked with an
	// unrecognized section kind; this is a programming defect
	ErrUnknownSectionKind = errors.New("unknown section kind")

	// ErrUnterminatedSection indicates a section opener with no matching
	// closer before end of input
	ErrUnterminatedSection = errors.New("unterminated section")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// MalformedEntryError reports a member line that does not match the
// extraction pattern for its section kind. It is fatal: silently reordering
// a malformed entry could corrupt project structure, so the run aborts with
// no partial output committed.
type MalformedEntryError struct {
	Kind string
	Line string
}

// Error implements the error interface
func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed %s entry: %q", e.Kind, e.Line)
}

// Is implements errors.Is support
func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// UnknownKindError reports an internal contract violation: a normalizer
// invoked with a kind it does not understand.
type UnknownKindError struct {
	Kind string
}

// Error implements the error interface
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown section kind %q", e.Kind)
}

// Is implements errors.Is support
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownSectionKind
}

// UnterminatedSectionError reports a section whose closer never appeared
// before end of input.
type UnterminatedSectionError struct {
	Kind   string
	Closer string
}

// Error implements the error interface
func (e *UnterminatedSectionError) Error() string {
	return fmt.Sprintf("unterminated %s section: closer %q not found", e.Kind, e.Closer)
}

// Is implements errors.Is support
func (e *UnterminatedSectionError) Is(target error) bool {
	return target == ErrUnterminatedSection
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s %v: %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "rename", "chmod"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsMalformedEntry checks if an error is a malformed entry error
func IsMalformedEntry(err error) bool {
	return errors.Is(err, ErrMalformedEntry)
}

// IsUnknownSectionKind checks if an error is an unknown section kind error
func IsUnknownSectionKind(err error) bool {
	return errors.Is(err, ErrUnknownSectionKind)
}

// IsUnterminatedSection checks if an error is an unterminated section error
func IsUnterminatedSection(err error) bool {
	return errors.Is(err, ErrUnterminatedSection)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	message := err.Error()
	return &IOError{Operation: operation, Path: path, Message: message, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
