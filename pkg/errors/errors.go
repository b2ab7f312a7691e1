package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - rejected input and lookups the provider could not satisfy
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure errors - provider transport, payloads and local storage
	ErrorTypeExternalAPI
	ErrorTypeDecode
	ErrorTypeStorage
	ErrorTypeGeolocation

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeGeolocation:
		return "GEOLOCATION_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used throughout the codebase
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	ExternalAPIError   = ErrorTypeExternalAPI
	DecodeError        = ErrorTypeDecode
	StorageError       = ErrorTypeStorage
	GeolocationError   = ErrorTypeGeolocation
	ConfigurationError = ErrorTypeConfiguration
)

// Code narrows an error type down to the precise reason a step failed.
type Code string

const (
	CodeNone                   Code = ""
	CodeEmptyInput             Code = "EMPTY_INPUT"
	CodeTooShort               Code = "TOO_SHORT"
	CodeInvalidCharacters      Code = "INVALID_CHARACTERS"
	CodeNotFound               Code = "NOT_FOUND"
	CodeUnreachable            Code = "UNREACHABLE"
	CodeDecodeFailure          Code = "DECODE_FAILURE"
	CodeGeolocationUnavailable Code = "GEOLOCATION_UNAVAILABLE"
)

type AppError struct {
	Type    ErrorType
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// WithCode returns the error with its code set
func (e *AppError) WithCode(code Code) *AppError {
	e.Code = code
	return e
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// NewInputError reports a rejected user query; the message is shown verbatim.
func NewInputError(code Code, message string) *AppError {
	return New(ValidationError, message).WithCode(code)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message).WithCode(CodeNotFound)
}

// Infrastructure Error Constructors
func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause).WithCode(CodeUnreachable)
}

func NewDecodeError(message string, cause error) *AppError {
	return Wrap(DecodeError, message, cause).WithCode(CodeDecodeFailure)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewGeolocationError(message string, cause error) *AppError {
	return Wrap(GeolocationError, message, cause).WithCode(CodeGeolocationUnavailable)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// As extracts the first AppError in the chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the first AppError in the chain
func CodeOf(err error) Code {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return CodeNone
}

// Helper functions for error type checking
func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsExternalAPIError(err error) bool {
	return isType(err, ExternalAPIError)
}

func IsDecodeError(err error) bool {
	return isType(err, DecodeError)
}

func IsStorageError(err error) bool {
	return isType(err, StorageError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

func isType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}
