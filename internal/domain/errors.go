package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// Validation errors
	CodeValidation          ErrorCode = "VALIDATION_ERROR"
	CodeMissingField        ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat       ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange          ErrorCode = "OUT_OF_RANGE"
	CodeInvalidFileType     ErrorCode = "INVALID_FILE_TYPE"
	CodeAnswerCountMismatch ErrorCode = "ANSWER_COUNT_MISMATCH"

	// Pipeline errors
	CodeExtraction ErrorCode = "EXTRACTION_ERROR"
	CodeLLMRequest ErrorCode = "LLM_REQUEST_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
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

// WithContext attaches a key/value pair surfaced in the error response details
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsValidation reports whether the error was caused by bad caller input
func (e *DomainError) IsValidation() bool {
	switch e.Code {
	case CodeValidation, CodeMissingField, CodeInvalidFormat, CodeOutOfRange,
		CodeInvalidFileType, CodeAnswerCountMismatch:
		return true
	}
	return false
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewConfigurationError(message string) *DomainError {
	return NewError(CodeConfiguration, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(CodeValidation, message, nil)
}

func NewInvalidFileTypeError(filename string) *DomainError {
	return NewError(CodeInvalidFileType, "Only PDF files are allowed", nil).
		WithContext("filename", filename)
}

func NewAnswerCountMismatchError(userCount, correctCount int) *DomainError {
	return NewError(CodeAnswerCountMismatch, "Answer count mismatch", nil).
		WithContext("user_answers", userCount).
		WithContext("correct_answers", correctCount)
}

func NewExtractionError(cause error) *DomainError {
	return NewError(CodeExtraction, "Error extracting text from PDF", cause)
}

func NewLLMRequestError(cause error) *DomainError {
	return NewError(CodeLLMRequest, "API request failed", cause)
}

// FieldError describes a single invalid request field
type FieldError struct {
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field error found in a request
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) FieldError {
	return FieldError{
		Code:    CodeMissingField,
		Field:   field,
		Message: "field required",
	}
}

func NewInvalidFormatError(field, value string) FieldError {
	return FieldError{
		Code:    CodeInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("invalid value %q", value),
	}
}

func NewInvalidChoiceError(field, value string, allowed []string) FieldError {
	return FieldError{
		Code:    CodeInvalidFormat,
		Field:   field,
		Message: fmt.Sprintf("invalid value %q, expected one of: %s", value, strings.Join(allowed, ", ")),
	}
}

func NewOutOfRangeError(field string, value, min, max int) FieldError {
	return FieldError{
		Code:    CodeOutOfRange,
		Field:   field,
		Message: fmt.Sprintf("value %d out of range [%d, %d]", value, min, max),
	}
}
