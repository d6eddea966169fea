// Package errors implements the core's error taxonomy (spec §7) and the
// Rust-style diagnostic reporter detectors and the host use to render it.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/segmentio/ksuid"

	"tactlint/internal/ast"
)

// UsageError is spec §7's first taxonomy case: malformed AST input, an
// unknown detector id, an unsupported statement/expression kind. It
// surfaces immediately, aborts the current compilation unit, and lets the
// host continue with the next one — never a panic.
type UsageError struct {
	Message  string
	Location ast.Position
}

func NewUsageError(loc ast.Position, format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...), Location: loc}
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error at %s: %s", e.Location, e.Message)
}

// InternalError is spec §7's second taxonomy case: a broken invariant (a
// missing statement for a block id, a CFG lookup for a known id that
// fails). These indicate bugs in the core itself, so every InternalError
// carries a ksuid for cross-log correlation; when it wraps a low-level
// cause, that cause also carries a stack trace captured via
// github.com/pkg/errors.
type InternalError struct {
	ID       string
	Message  string
	Location ast.Position
	cause    error
}

// NewInternalError builds an InternalError, stack-wrapping cause (if
// non-nil) so the eventual log line carries a trace back to where the
// invariant actually broke, not just where it was reported.
func NewInternalError(loc ast.Position, cause error, format string, args ...any) *InternalError {
	var wrapped error
	if cause != nil {
		wrapped = pkgerrors.WithStack(cause)
	}
	return &InternalError{
		ID:       ksuid.New().String(),
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
		cause:    wrapped,
	}
}

func (e *InternalError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("internal error [%s] at %s: %s: %v", e.ID, e.Location, e.Message, e.cause)
	}
	return fmt.Sprintf("internal error [%s] at %s: %s", e.ID, e.Location, e.Message)
}

func (e *InternalError) Unwrap() error { return e.cause }

// StackTrace exposes the captured frames, when cause was wrapped, for a
// reporter or log sink that wants them (github.com/pkg/errors convention).
func (e *InternalError) StackTrace() pkgerrors.StackTrace {
	type tracer interface{ StackTrace() pkgerrors.StackTrace }
	if t, ok := e.cause.(tracer); ok {
		return t.StackTrace()
	}
	return nil
}
