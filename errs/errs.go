// Package errs defines the error taxonomy shared by the table
// providers, the ORF scanner and the watermark codec.
//
// Callers should branch on Kind (IsKind, KindOf) rather than on error
// strings. A failure is always reported as an error; empty results
// (no regions, zero capacity) are never used to signal one.
package errs

import (
	"errors"
	"fmt"
)

// Kind is a stable category of failure.
type Kind string

const (
	// InvalidArgument is a bad reading frame, a malformed region
	// set or bad command line input.
	InvalidArgument Kind = "InvalidArgument"
	// NotFound is an unknown genetic code id, or a codon absent
	// from the table.
	NotFound Kind = "NotFound"
	// CapacityExceeded means the payload does not fit into the
	// coding regions.
	CapacityExceeded Kind = "CapacityExceeded"
	// Unresolvable is a corrupt or ambiguous genetic code table.
	Unresolvable Kind = "Unresolvable"
	// TruncatedPayload means the declared payload length exceeds
	// the bits available in the sequence.
	TruncatedPayload Kind = "TruncatedPayload"
)

// Error is the structured error type. Op names the failing
// operation, e.g. "watermark.Embed".
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Message
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New returns an error of the given kind with a formatted message.
func New(kind Kind, op string, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind caused by cause.
func Wrap(kind Kind, op string, cause error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind of the outermost *Error in err's chain, or
// "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Cause
	}
	return false
}
