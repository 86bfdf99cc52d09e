package errors

import (
	"wozmarket/internal/errors"
)

// Kind classifies an application error by how callers are expected to react.
type Kind int

const (
	// KindInternal is an unexpected failure of a collaborator (store I/O, encoding).
	KindInternal Kind = iota
	// KindNotFound is a lookup miss; the presentation layer renders a fallback view.
	KindNotFound
	// KindMalformedStoredData is corrupt persisted JSON; the value is treated as absent.
	KindMalformedStoredData
	// KindInvalidFilterInput is an unparseable filter token; it never constrains the result.
	KindInvalidFilterInput
	// KindEmptyVocabulary is a programming precondition violation in the generator.
	KindEmptyVocabulary
	// KindValidation is rejected user input.
	KindValidation
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformedStoredData:
		return "malformed_stored_data"
	case KindInvalidFilterInput:
		return "invalid_filter_input"
	case KindEmptyVocabulary:
		return "empty_vocabulary"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog lookup errors
	ErrProductNotFound = NewBaseError(
		KindNotFound,
		"PRODUCT_NOT_FOUND",
		"Producto no encontrado",
		"",
	)

	// Persistence errors
	ErrMalformedStoredData = NewBaseError(
		KindMalformedStoredData,
		"MALFORMED_STORED_DATA",
		"Datos almacenados inválidos",
		"",
	)

	// Filter errors
	ErrInvalidFilterInput = NewBaseError(
		KindInvalidFilterInput,
		"INVALID_FILTER_INPUT",
		"Filtro inválido",
		"",
	)

	// Generator precondition errors
	ErrEmptyVocabulary = NewBaseError(
		KindEmptyVocabulary,
		"EMPTY_VOCABULARY",
		"Vocabulario vacío",
		"",
	)

	ErrInvalidRange = NewBaseError(
		KindEmptyVocabulary,
		"INVALID_RANGE",
		"Rango inválido",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		"VALIDATION_FAILED",
		"Los datos del producto no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		KindInternal,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// KindOf returns the Kind of the first AppError found in err's tree,
// or KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// StoreExecuteError represents a key-value store failure, implementing the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "store execution failed").Error()
}

// Unwrap exposes the underlying store error
func (e *StoreExecuteError) Unwrap() error {
	return e.err
}

// Kind returns the error classification
func (e *StoreExecuteError) Kind() Kind {
	return KindInternal
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Error al acceder al almacenamiento local"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
