package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies pipeline failures. Every error that crosses a service
// boundary carries exactly one kind; handlers map kinds to HTTP statuses.
type Kind string

const (
	KindInvalidRequest   Kind = "invalid_request"
	KindGenerationFailed Kind = "generation_failed"
	KindMalformedOutput  Kind = "malformed_output"
	KindSchemaViolation  Kind = "schema_violation"
	KindRenderFailed     Kind = "render_failed"
	KindArchiveFailed    Kind = "archive_failed"
	KindPartialArchive   Kind = "partial_archive"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind carried by err, or "" when err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindMalformedOutput, KindSchemaViolation:
		return http.StatusUnprocessableEntity
	case KindGenerationFailed:
		return http.StatusBadGateway
	case KindRenderFailed, KindArchiveFailed, KindPartialArchive:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
