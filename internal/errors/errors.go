// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so failures in the authority invocation path can be
// distinguished from local precondition failures and business-level rejections.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// CandidateExhausted indicates no launch candidate under any delivery
	// mode produced usable output; aggregated diagnostics are in Message.
	CandidateExhausted Kind = "candidate_exhausted"
	// MalformedResponse indicates non-empty authority output that failed
	// JSON parsing. Immediate, never retried against other candidates.
	MalformedResponse Kind = "malformed_response"
	// LogicError indicates well-formed JSON with a non-"ok" status; the
	// authority's own message is surfaced verbatim.
	LogicError Kind = "logic_error"
	// ValidationError indicates a locally detected precondition failure;
	// the authority is never contacted.
	ValidationError Kind = "validation_error"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// HasKind reports whether err carries the given kind anywhere in its chain.
func HasKind(err error, kind Kind) bool {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
