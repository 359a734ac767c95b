/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a setting asset does not exist in a store
	ErrNotFound = errors.New("setting asset not found")

	// ErrAlreadyExists is returned when registering a name that is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat is returned when no decoder is registered for an asset format
	ErrUnsupportedFormat = errors.New("unsupported asset format")

	// ErrNoIndexMap is returned when a record type has no usable index map
	ErrNoIndexMap = errors.New("no index map found for type")
)

// NotFoundError represents a missing asset in a particular store
type NotFoundError struct {
	Store string
	Path  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: asset %q not found", e.Store, e.Path)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a duplicate registration
type AlreadyExistsError struct {
	Kind string
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.Name)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FormatError represents an asset whose encoding has no registered decoder
type FormatError struct {
	Path   string
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no decoder registered for format %q (asset %q)", e.Format, e.Path)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(store, path string) error {
	return &NotFoundError{Store: store, Path: path}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, name string) error {
	return &AlreadyExistsError{Kind: kind, Name: name}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFormatError creates a new FormatError
func NewFormatError(path, format string) error {
	return &FormatError{Path: path, Format: format}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupportedFormat checks if an error is an unsupported format error
func IsUnsupportedFormat(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat)
}
