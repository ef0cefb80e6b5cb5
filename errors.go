package vmf

import (
	"fmt"
	"strings"

	"github.com/mapfmt/go-vmf/internal/scanner"
)

// Kind identifies the syntax error that stopped a parse. There are no
// semantic kinds; the parser validates structure only.
type Kind string

const (
	UnterminatedString      Kind = "unterminated string"
	ExpectedPropertyValue   Kind = "expected property value"
	ExpectedIdentifier      Kind = "expected identifier"
	ExpectedOpenBrace       Kind = "expected '{'"
	ExpectedCloseBrace      Kind = "expected '}'"
	UnexpectedTrailingInput Kind = "unexpected trailing input"
)

// failure is the single internal record of a parse error: the innermost
// kind and offset plus the context frames pushed while unwinding the
// recursive descent, innermost first. Every public error representation is
// built from one of these.
type failure struct {
	kind   Kind
	offset int
	frames []frame
}

type frame struct {
	msg    string
	offset int
}

func fail(kind Kind, offset int) *failure {
	return &failure{kind: kind, offset: offset}
}

// in records an enclosing parser context, e.g. the property or block being
// parsed when the failure occurred.
func (f *failure) in(msg string, offset int) *failure {
	f.frames = append(f.frames, frame{msg: msg, offset: offset})
	return f
}

// ErrorMode selects the error representation Parse returns on failure, in
// increasing order of detail: UnitError, TupleError, SimpleError,
// VerboseError. All four are derived from the same internal failure record,
// so the choice never changes what the parser accepts.
type ErrorMode interface {
	UnitError | TupleError | SimpleError | VerboseError
}

// UnitError reports that parsing failed, with no detail.
type UnitError struct{}

func (UnitError) Error() string { return "vmf: parse failed" }

// TupleError pairs the innermost failure kind with the input remaining at
// the point the parser stopped.
type TupleError struct {
	Remaining string
	Kind      Kind
}

func (e TupleError) Error() string {
	return fmt.Sprintf("vmf: %s at %s", e.Kind, snippet(e.Remaining))
}

// SimpleError reports the innermost failure kind with its position in the
// input. Line and Column are 1-based; Column counts bytes.
type SimpleError struct {
	Kind      Kind
	Offset    int
	Line      int
	Column    int
	Remaining string
}

func (e SimpleError) Error() string {
	return fmt.Sprintf("vmf: %s at line %d, column %d", e.Kind, e.Line, e.Column)
}

// Frame is one parser context in a VerboseError trace, e.g. the property or
// enclosing block being parsed when the failure occurred.
type Frame struct {
	Message string
	Offset  int
	Line    int
	Column  int
}

// VerboseError extends SimpleError with the chain of parser contexts
// unwound from the failure point, ordered innermost to outermost.
type VerboseError struct {
	SimpleError
	Trace []Frame
}

func (e VerboseError) Error() string {
	var b strings.Builder
	b.WriteString(e.SimpleError.Error())
	for _, fr := range e.Trace {
		fmt.Fprintf(&b, "\n\twhile parsing %s (line %d, column %d)", fr.Message, fr.Line, fr.Column)
	}
	return b.String()
}

// newParseError builds the caller-selected representation from the internal
// failure record.
func newParseError[E ErrorMode](f *failure, sc *scanner.Scanner) error {
	var e E
	switch v := any(&e).(type) {
	case *UnitError:
		// Nothing to fill in.
	case *TupleError:
		*v = TupleError{Remaining: sc.From(f.offset), Kind: f.kind}
	case *SimpleError:
		*v = newSimpleError(f, sc)
	case *VerboseError:
		*v = VerboseError{SimpleError: newSimpleError(f, sc), Trace: newTrace(f, sc)}
	}
	return any(e).(error)
}

func newSimpleError(f *failure, sc *scanner.Scanner) SimpleError {
	line, col := sc.Position(f.offset)
	return SimpleError{
		Kind:      f.kind,
		Offset:    f.offset,
		Line:      line,
		Column:    col,
		Remaining: sc.From(f.offset),
	}
}

func newTrace(f *failure, sc *scanner.Scanner) []Frame {
	if len(f.frames) == 0 {
		return nil
	}
	trace := make([]Frame, len(f.frames))
	for i, fr := range f.frames {
		line, col := sc.Position(fr.offset)
		trace[i] = Frame{Message: fr.msg, Offset: fr.offset, Line: line, Column: col}
	}
	return trace
}

func snippet(s string) string {
	const max = 24
	if s == "" {
		return "end of input"
	}
	if len(s) > max {
		return fmt.Sprintf("%q...", s[:max])
	}
	return fmt.Sprintf("%q", s)
}
