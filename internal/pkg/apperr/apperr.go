// Package apperr classifies failures into the buckets callers act on:
// missing entities, rejected input, and storage faults.
package apperr

import (
	"errors"
	"strings"
)

// Kind is the failure bucket of an error.
type Kind uint8

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error carries a Kind together with an optional operation name and cause.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		if e.Msg != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a sentinel-style error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches kind and op to err. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
// Errors that were never classified are treated as storage faults.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) && e.Kind != 0 {
		return e.Kind
	}
	return KindStore
}

// Is reports whether err belongs to kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns text that is safe to show to API callers.
// Store faults hide driver details.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if KindOf(err) == KindStore {
		return "storage failure, please retry later"
	}
	return err.Error()
}
