package domain

import (
	"errors"
	"fmt"
)

// Kind is the machine-checkable error category exposed to the
// presentation layer.
type Kind string

const (
	KindPolicy     Kind = "policy"
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindOther      Kind = "other"
)

// Error is the single error shape crossing the service boundary. Raw
// backend errors stay in Err as a diagnostic and are never shown to users;
// Msg carries the user-facing text.
type Error struct {
	Kind      Kind
	Operation string // create | update | delete | read
	Msg       string
	Err       error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Kind, e.Operation, e.Msg)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Kind, e.Operation, e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewPolicy(operation string, err error) *Error {
	return &Error{
		Kind:      KindPolicy,
		Operation: operation,
		Msg:       "operation restricted by authorization rules",
		Err:       err,
	}
}

func NewNotFound(operation string) *Error {
	return &Error{
		Kind:      KindNotFound,
		Operation: operation,
		Msg:       "requested entity does not exist",
	}
}

func NewValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Operation: "validate", Msg: msg}
}

func NewOther(operation string, err error) *Error {
	return &Error{
		Kind:      KindOther,
		Operation: operation,
		Msg:       "operation failed",
		Err:       err,
	}
}

// KindOf classifies any error into the taxonomy. Unrecognized errors are
// KindOther.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindOther
}

func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
