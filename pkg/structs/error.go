package structs

import (
	"fmt"

	"github.com/pkg/errors"
)

type ErrorKind string

const (
	MalformedNotification ErrorKind = "malformed notification"
	ObjectNotFound        ErrorKind = "object not found"
	RetrievalError        ErrorKind = "retrieval error"
	DecompressionError    ErrorKind = "decompression error"
	MalformedRecordSet    ErrorKind = "malformed record set"
	PublishError          ErrorKind = "publish error"
)

// Error is returned by every stage of the pipeline. All kinds abort the
// invocation.
type Error struct {
	Kind ErrorKind
	Err  error
}

// NewError wraps err with a kind
func NewError(kind ErrorKind, err error) error {
	return errors.WithStack(&Error{Kind: kind, Err: err})
}

// Errorf creates an error of the given kind from a format string
func Errorf(kind ErrorKind, format string, args ...interface{}) error {
	return NewError(kind, fmt.Errorf(format, args...))
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorIs returns true if err or anything it wraps is an Error of the given kind
func ErrorIs(err error, kind ErrorKind) bool {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind == kind
	}

	return false
}
