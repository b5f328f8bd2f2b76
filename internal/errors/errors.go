package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents a uniqueness conflict (slug, system name, field name)
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this app"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// StorageError wraps a failure raised by the backing store, including
// JSON columns that can no longer be decoded.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage error: %s", e.Op)
	}
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound   = &NotFoundError{Entity: "tenant"}
	ErrCrmAppNotFound   = &NotFoundError{Entity: "crm app"}
	ErrModuleNotFound   = &NotFoundError{Entity: "module"}
	ErrFieldNotFound    = &NotFoundError{Entity: "field"}
	ErrViewNotFound     = &NotFoundError{Entity: "view"}
	ErrRecordNotFound   = &NotFoundError{Entity: "record"}
	ErrActivityNotFound = &NotFoundError{Entity: "activity"}
	ErrPillarNotFound   = &NotFoundError{Entity: "pillar"}
	ErrPresetNotFound   = &NotFoundError{Entity: "business preset"}
)

// Already Exists Errors
var (
	ErrTenantExists      = &AlreadyExistsError{Entity: "tenant", Context: "with this slug"}
	ErrTenantOwnerExists = &AlreadyExistsError{Entity: "tenant owner", Context: "with a tenant already"}
	ErrCrmAppExists      = &AlreadyExistsError{Entity: "crm app", Context: "with this slug in the tenant"}
	ErrModuleExists      = &AlreadyExistsError{Entity: "module", Context: "with this system name in the app"}
	ErrFieldExists       = &AlreadyExistsError{Entity: "field", Context: "with this name in the module"}
)

// Business Logic Errors
var (
	ErrSystemFieldDelete    = &ValidationError{Field: "isSystem", Message: "system fields cannot be deleted"}
	ErrEmptySlug            = &ValidationError{Field: "name", Message: "name must contain at least one letter or digit"}
	ErrInvalidPagination    = &ValidationError{Field: "limit", Message: "limit and offset must be non-negative"}
	ErrEmptySearchTerm      = &ValidationError{Field: "q", Message: "search term is required"}
	ErrRecordDataRequired   = &ValidationError{Field: "data", Message: "data object is required"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingAuthorization = &AuthenticationError{Message: "authorization header required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewStorageError wraps a store failure for the given operation
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
