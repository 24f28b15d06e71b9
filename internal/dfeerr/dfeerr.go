// Package dfeerr defines the typed failure taxonomy used across ingestion,
// validation and scheduling. Every error is surfaced at the boundary of the
// call that detected it; nothing is swallowed inside the placement loop.
package dfeerr

import "fmt"

// Kind identifies which failure category an Error belongs to.
type Kind int8

const (
	_ Kind = iota
	InputMalformed
	GraphInvalid
	PrecedenceViolation
	IndexOutOfRange
	EmptyDAG
)

func (k Kind) String() string {
	switch k {
	case InputMalformed:
		return "InputMalformed"
	case GraphInvalid:
		return "GraphInvalid"
	case PrecedenceViolation:
		return "PrecedenceViolation"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case EmptyDAG:
		return "EmptyDAG"
	default:
		return "Unknown"
	}
}

// Error is a human-readable failure tied to a Kind, and (when applicable) the
// DAG and function it was raised for.
type Error struct {
	Kind     Kind
	DAG      string
	Function int // 0 when not applicable
	Message  string
}

func (e *Error) Error() string {
	switch {
	case e.DAG != "" && e.Function > 0:
		return fmt.Sprintf("%s: dag %q, function %d: %s", e.Kind, e.DAG, e.Function, e.Message)
	case e.DAG != "":
		return fmt.Sprintf("%s: dag %q: %s", e.Kind, e.DAG, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Is allows errors.Is(err, &dfeerr.Error{Kind: dfeerr.InputMalformed}) style
// checks by comparing the Kind of two *Error values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, dag string, function int, format string, args ...any) *Error {
	return &Error{Kind: kind, DAG: dag, Function: function, Message: fmt.Sprintf(format, args...)}
}
