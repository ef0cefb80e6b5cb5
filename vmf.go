package vmf

import (
	"strings"

	"github.com/mapfmt/go-vmf/internal/scanner"
)

// Text constrains the string storage of a parsed tree. The two
// implementations are Borrowed and Owned; the unexported method keeps the
// set closed so the parser can rely on their semantics.
type Text interface {
	~string
	store(raw string) string
}

// Borrowed stores every token as a zero-copy substring of the input passed
// to Parse. The tree keeps the input's backing array reachable for as long
// as the tree itself is.
type Borrowed string

func (Borrowed) store(raw string) string { return raw }

// Owned copies every token out of the input, so the parsed tree does not
// pin the input buffer.
type Owned string

func (Owned) store(raw string) string { return strings.Clone(raw) }

func store[S Text](raw string) S {
	var s S
	return S(s.store(raw))
}

// Parse parses VMF source text into a document tree.
//
// The grammar, with trivia (whitespace and '//' line comments) permitted
// between any two tokens:
//
//	document   := trivia block* trivia EOF
//	block      := identifier trivia '{' trivia (property trivia | block trivia)* '}'
//	property   := '"' text '"' trivia '"' text '"'
//	identifier := run of bytes other than whitespace, braces, and quotes
//
// S selects the string storage of the result (Borrowed or Owned) and E the
// error representation (UnitError, TupleError, SimpleError, or
// VerboseError). The first syntax error aborts the parse; the returned
// error's dynamic type is then E. Input after the last top-level block is
// rejected as UnexpectedTrailingInput.
//
// Parsing recurses once per nesting level, so input nested deeply enough
// can exhaust the call stack.
func Parse[S Text, E ErrorMode](input string) (*Vmf[S], error) {
	p := &parser[S]{sc: scanner.New(input)}
	doc, f := p.document()
	if f != nil {
		return nil, newParseError[E](f, p.sc)
	}
	return doc, nil
}
