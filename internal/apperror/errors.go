// Package apperror holds the error taxonomy shared by the resource validator,
// the services and the HTTP error handler.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindConflictingIdentity Kind = "ConflictingIdentity"
	KindMissingIdentity     Kind = "MissingIdentity"
	KindIdentityMismatch    Kind = "IdentityMismatch"
	KindNotFound            Kind = "NotFound"
	KindValidationFailure   Kind = "ValidationFailure"
)

// Error keys understood by clients.
const (
	KeyIdExists    = "idexists"
	KeyIdNull      = "idnull"
	KeyIdInvalid   = "idinvalid"
	KeyIdNotFound  = "idnotfound"
	KeyValidation  = "validation"
	KeyHasChildren = "haschildren"
)

// FieldError is one violated constraint on a request body.
type FieldError struct {
	ObjectName string `json:"objectName"`
	Field      string `json:"field"`
	Message    string `json:"message"`
}

// Error is a caller mistake. It is never retried.
type Error struct {
	Kind        Kind
	EntityName  string
	ErrorKey    string
	Message     string
	Field       string
	FieldErrors []FieldError
	status      int
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.EntityName, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.EntityName, e.Message)
}

// StatusCode returns the HTTP status code for this error.
func (e *Error) StatusCode() int {
	if e.status != 0 {
		return e.status
	}
	return http.StatusBadRequest
}

func ConflictingIdentity(entityName, message string) *Error {
	return &Error{Kind: KindConflictingIdentity, EntityName: entityName, ErrorKey: KeyIdExists, Message: message}
}

func MissingIdentity(entityName string) *Error {
	return &Error{Kind: KindMissingIdentity, EntityName: entityName, ErrorKey: KeyIdNull, Message: "Invalid id"}
}

func IdentityMismatch(entityName string) *Error {
	return &Error{Kind: KindIdentityMismatch, EntityName: entityName, ErrorKey: KeyIdInvalid, Message: "Invalid ID"}
}

// NotFound is the validator's existence failure, reported as a bad request.
func NotFound(entityName string) *Error {
	return &Error{Kind: KindNotFound, EntityName: entityName, ErrorKey: KeyIdNotFound, Message: "Entity not found"}
}

// Missing is a read of an absent resource, reported as 404.
func Missing(entityName string) *Error {
	return &Error{Kind: KindNotFound, EntityName: entityName, ErrorKey: KeyIdNotFound, Message: "Entity not found", status: http.StatusNotFound}
}

func ValidationFailure(entityName, field, message string) *Error {
	return &Error{Kind: KindValidationFailure, EntityName: entityName, ErrorKey: KeyValidation, Message: message, Field: field}
}

// InvalidFields reports body validation failures, one entry per field.
func InvalidFields(entityName string, fieldErrors []FieldError) *Error {
	err := &Error{Kind: KindValidationFailure, EntityName: entityName, ErrorKey: KeyValidation, Message: "Validation failed", FieldErrors: fieldErrors}
	if len(fieldErrors) == 1 {
		err.Field = fieldErrors[0].Field
	}
	return err
}

func HasChildren(entityName string) *Error {
	return &Error{Kind: KindValidationFailure, EntityName: entityName, ErrorKey: KeyHasChildren, Message: "Entity still has children"}
}

// Is reports whether err (or anything it wraps) is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
