package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Evaluation errors. Scoring fails closed: a model failure must never
	// produce a fabricated readiness score.
	CodeScoringUnavailable ErrorCode = "SCORING_UNAVAILABLE"

	// Quiz errors
	CodeQuizGenerationFailed ErrorCode = "QUIZ_GENERATION_FAILED"
	CodeRetestSourceMissing  ErrorCode = "RETEST_SOURCE_MISSING"
	CodeAttemptNotFound      ErrorCode = "ATTEMPT_NOT_FOUND"
	CodeAttemptAlreadyGraded ErrorCode = "ATTEMPT_ALREADY_GRADED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

// NewScoringUnavailableError wraps a predictive-model failure. Callers must
// surface this instead of returning a partial score.
func NewScoringUnavailableError(cause error) *DomainError {
	return NewError(CodeScoringUnavailable, "Readiness model is unavailable", cause)
}

// NewQuizGenerationFailedError is returned once generation and validation
// retries are exhausted.
func NewQuizGenerationFailedError(cause error) *DomainError {
	return NewError(CodeQuizGenerationFailed, "Failed to generate a valid quiz", cause)
}

// NewRetestSourceMissingError is distinct from generation failure so the
// caller can explain why the retest could not start.
func NewRetestSourceMissingError(attemptID string) *DomainError {
	return NewError(CodeRetestSourceMissing, fmt.Sprintf("Original attempt not found for retest: %s", attemptID), nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotFound, fmt.Sprintf("Quiz attempt not found: %s", attemptID), nil)
}

func NewAttemptAlreadyGradedError(attemptID string) *DomainError {
	return NewError(CodeAttemptAlreadyGraded, fmt.Sprintf("Quiz attempt already graded: %s", attemptID), nil)
}

// ValidationError represents a single field validation failure
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field validation failures for one request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return e[0].Error()
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field, value string) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("has invalid format: %q", value)}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{Field: field, Message: fmt.Sprintf("value %d is out of range [%d, %d]", value, min, max)}
}
