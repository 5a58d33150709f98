// Package errs defines the typed error taxonomy shared by every engine.
//
// Callers branch on the Kind (errors.Is against the sentinels below, or KindOf),
// never on message text.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindInvalidTransition Kind = "INVALID_TRANSITION"
	KindNotFound          Kind = "NOT_FOUND"
	KindAlreadyConverted  Kind = "ALREADY_CONVERTED"
	KindClaimInProgress   Kind = "CLAIM_IN_PROGRESS"
	KindExceedsBalance    Kind = "EXCEEDS_BALANCE"
	KindWarrantyExpired   Kind = "WARRANTY_EXPIRED"
	KindNotEligible       Kind = "NOT_ELIGIBLE"
	KindExpired           Kind = "EXPIRED"
	KindConflict          Kind = "CONFLICT"
)

// Sentinels, one per kind. errors.Is(err, ErrNotFound) is true for any *Error
// of that kind, whatever its entity or message.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrAlreadyConverted  = &Error{Kind: KindAlreadyConverted}
	ErrClaimInProgress   = &Error{Kind: KindClaimInProgress}
	ErrExceedsBalance    = &Error{Kind: KindExceedsBalance}
	ErrWarrantyExpired   = &Error{Kind: KindWarrantyExpired}
	ErrNotEligible       = &Error{Kind: KindNotEligible}
	ErrExpired           = &Error{Kind: KindExpired}
	ErrConflict          = &Error{Kind: KindConflict}
)

type Error struct {
	Kind    Kind
	Entity  string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Entity != "" {
		msg = e.Entity + ": " + msg
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on kind only.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func Validation(entity, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

func InvalidTransition(entity string, from, to any) *Error {
	return &Error{Kind: KindInvalidTransition, Entity: entity, Message: fmt.Sprintf("cannot move from %v to %v", from, to)}
}

func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf("id %q not found", id)}
}

func Conflict(entity, id string, err error) *Error {
	return &Error{Kind: KindConflict, Entity: entity, Message: fmt.Sprintf("%q was modified concurrently", id), Err: err}
}

func New(kind Kind, entity, format string, args ...any) *Error {
	return &Error{Kind: kind, Entity: entity, Message: fmt.Sprintf(format, args...)}
}
