package legal

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the ways a request can be malformed. Every failure
// in the core maps to exactly one kind; nothing here is retryable.
type ErrorKind string

const (
	KindUnknownDocumentType  ErrorKind = "unknown_document_type"
	KindUnknownArea          ErrorKind = "unknown_area"
	KindMissingRequiredField ErrorKind = "missing_required_field"
	KindEmptyFactSet         ErrorKind = "empty_fact_set"
	KindInvalidInput         ErrorKind = "invalid_input"
)

// Error is the structured error value returned across the core boundary.
// Fields carries the offending field names where the kind has any.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Fields  []string  `json:"fields,omitempty"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func UnknownDocumentTypeError(dt DocumentType) *Error {
	return &Error{
		Kind:    KindUnknownDocumentType,
		Message: fmt.Sprintf("unknown document type: %s", dt),
	}
}

func UnknownAreaError(area Area) *Error {
	return &Error{
		Kind:    KindUnknownArea,
		Message: fmt.Sprintf("unknown area of law: %s", area),
	}
}

// MissingRequiredFieldError reports every missing field at once so the
// caller can correct the request in a single pass.
func MissingRequiredFieldError(fields []string) *Error {
	return &Error{
		Kind:    KindMissingRequiredField,
		Fields:  fields,
		Message: fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")),
	}
}

func EmptyFactSetError() *Error {
	return &Error{
		Kind:    KindEmptyFactSet,
		Message: "no facts remain after normalization",
	}
}

func InvalidInputError(fields ...string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Fields:  fields,
		Message: fmt.Sprintf("invalid input: %s", strings.Join(fields, ", ")),
	}
}
