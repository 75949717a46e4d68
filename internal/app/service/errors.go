package service

import (
	"fmt"
)

// Kind is the closed set of failures the service layer reports.
type Kind int

const (
	// KindUnknown covers lock and coordination failures.
	KindUnknown Kind = iota
	// KindDBError means the storage operation failed.
	KindDBError
	// KindNotFound means the requested ship does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindDBError:
		return "db_error"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrUnknown  = &Error{Kind: KindUnknown}
	ErrDB       = &Error{Kind: KindDBError}
	ErrNotFound = &Error{Kind: KindNotFound}
)

// Error is returned by every service operation. Err keeps the underlying
// cause for logs only.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Err == nil
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
