/*
Package diag implements grafigo's error-kind taxonomy and a
small warning sink for the non-fatal diagnostics extraction and rendering
produce along the way (AmbiguousIdentifier, NoMatchAtStep).

Hard failures are returned as plain Go errors; soft diagnostics are routed
through a tracing.Trace rather than panicking on recoverable conditions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grafigo.diag'.
func tracer() tracing.Trace {
	return tracing.Select("grafigo.diag")
}

// Kind enumerates grafigo's error/warning categories.
type Kind int

const (
	// InputIO covers failures reading the input grid or rule file.
	InputIO Kind = iota
	// RuleParse covers a rule-file syntax error at a given line.
	RuleParse
	// GridParse is reserved for grid-parsing failures; currently
	// unreachable by construction (grid.Parse never fails), kept as a
	// distinct kind.
	GridParse
	// AmbiguousIdentifier is a warning: two [name] candidates qualify for
	// the same path, the upper-left one was chosen.
	AmbiguousIdentifier
	// NoMatchAtStep is a warning: no Entry matched a committed render step;
	// the step's drawing command is skipped.
	NoMatchAtStep
	// AssertionViolation is an internal invariant failure. Fatal.
	AssertionViolation
)

func (k Kind) String() string {
	switch k {
	case InputIO:
		return "InputIO"
	case RuleParse:
		return "RuleParse"
	case GridParse:
		return "GridParse"
	case AmbiguousIdentifier:
		return "AmbiguousIdentifier"
	case NoMatchAtStep:
		return "NoMatchAtStep"
	case AssertionViolation:
		return "AssertionViolation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is grafigo's typed-error wrapper. Line is 1-based and only
// meaningful for Kind==RuleParse.
type Error struct {
	Kind    Kind
	Line    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds a plain *Error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// AtLine builds a RuleParse-style *Error carrying a 1-based line number.
func AtLine(kind Kind, line int, message string) *Error {
	return &Error{Kind: kind, Line: line, Message: message}
}

// Wrap builds an *Error that preserves cause for errors.Unwrap/errors.Is.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Message: cause.Error(), Cause: cause}
}

// Assert panics with an AssertionViolation if cond is false and the
// "panic-on-assertion" config toggle is set; otherwise it routes the
// violation through the tracer and returns it as an error.
func Assert(cond bool, format string, args ...interface{}) error {
	if cond {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	err := New(AssertionViolation, msg)
	if gconf.GetBool("panic-on-assertion") {
		panic(err)
	}
	tracer().Errorf("assertion violation: %s", msg)
	return err
}

// Warning is a non-fatal diagnostic surfaced during extraction or
// rendering (AmbiguousIdentifier, NoMatchAtStep).
type Warning struct {
	Kind    Kind
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Kind, w.Message)
}

// Sink collects warnings produced during a single extraction/render pass.
// The zero value is ready to use.
type Sink struct {
	Warnings []Warning
}

// Warn records a warning and logs it through the tracer immediately, so
// that CLI runs see it even without inspecting Sink.Warnings afterwards.
func (s *Sink) Warn(kind Kind, format string, args ...interface{}) {
	w := Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}
	s.Warnings = append(s.Warnings, w)
	tracer().Infof("%s", w.String())
}

// Empty reports whether no warnings were recorded.
func (s *Sink) Empty() bool {
	return len(s.Warnings) == 0
}
