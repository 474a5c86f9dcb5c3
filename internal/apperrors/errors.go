package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so callers and the HTTP layer can react
// without string matching.
type Kind int

const (
	// KindValidation is malformed or out-of-range input. Never retried.
	KindValidation Kind = iota + 1
	// KindNotFound is a referenced entity id that does not exist.
	KindNotFound
	// KindInactive is an entity that exists but is deactivated.
	KindInactive
	// KindConflict is a date window overlapping an existing open rental or
	// maintenance window on the same vehicle.
	KindConflict
	// KindState is an invalid transition, e.g. closing a closed rental.
	KindState
	// KindPersistence is a write rejected by storage after all domain
	// checks passed. Nothing was committed.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInactive:
		return "inactive"
	case KindConflict:
		return "conflict"
	case KindState:
		return "state"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the single error type crossing service boundaries. All domain
// checks run before any mutation, so any non-persistence Error guarantees
// no partial state change.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Inactive(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInactive, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func State(format string, args ...interface{}) *Error {
	return &Error{Kind: KindState, Message: fmt.Sprintf(format, args...)}
}

func Persistence(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not a domain Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is a domain Error of the given kind.
func IsKind(err error, k Kind) bool {
	return KindOf(err) == k
}
