// Package scanner provides the primitive lexing layer for VMF text:
// trivia skipping, quoted string literals, and bare identifiers.
//
// The scanner works on byte offsets into an immutable input string and
// never copies token text; every returned literal is a substring of the
// input. Deciding whether to retain or clone those substrings is the
// caller's concern.
package scanner

import "strings"

// Scanner is a cursor over VMF source text.
type Scanner struct {
	input string
	pos   int
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// EOF reports whether the scanner has consumed all input.
func (s *Scanner) EOF() bool { return s.pos >= len(s.input) }

// Peek returns the byte at the current offset, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.input[s.pos]
}

// Advance consumes a single byte.
func (s *Scanner) Advance() {
	if !s.EOF() {
		s.pos++
	}
}

// From returns the input from the given byte offset to the end.
func (s *Scanner) From(offset int) string {
	if offset > len(s.input) {
		offset = len(s.input)
	}
	return s.input[offset:]
}

// SkipTrivia consumes whitespace and '//' line comments. A comment runs to
// the next LF or CR, exclusive; the newline itself is consumed as
// whitespace on the next iteration.
func (s *Scanner) SkipTrivia() {
	for s.pos < len(s.input) {
		switch c := s.input[s.pos]; {
		case isSpace(c):
			s.pos++
		case c == '/' && s.pos+1 < len(s.input) && s.input[s.pos+1] == '/':
			s.pos += 2
			for s.pos < len(s.input) && s.input[s.pos] != '\n' && s.input[s.pos] != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

// QuotedString consumes a '"'-delimited literal and returns its contents
// without the delimiting quotes. The caller must have checked that the
// current byte is '"'. There is no escape processing: the literal ends at
// the very next '"', so "" is a valid empty literal and a quote can never
// appear inside one. Returns ok=false without consuming anything when no
// closing quote exists before end of input.
func (s *Scanner) QuotedString() (lit string, ok bool) {
	end := strings.IndexByte(s.input[s.pos+1:], '"')
	if end < 0 {
		return "", false
	}
	lit = s.input[s.pos+1 : s.pos+1+end]
	s.pos += end + 2
	return lit, true
}

// Identifier consumes a maximal run of identifier bytes. Returns ok=false
// without consuming anything when the current byte cannot start one.
func (s *Scanner) Identifier() (lit string, ok bool) {
	start := s.pos
	for s.pos < len(s.input) && IsIdentByte(s.input[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", false
	}
	return s.input[start:s.pos], true
}

// Position resolves a byte offset to a 1-based line and column. The column
// counts bytes, not runes. Used only when building diagnostics, so the
// linear scan is fine.
func (s *Scanner) Position(offset int) (line, column int) {
	if offset > len(s.input) {
		offset = len(s.input)
	}
	line = 1
	lineStart := 0
	for i := range offset {
		if s.input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// IsIdentByte reports whether c may appear in a block name: anything but
// whitespace, braces, and quotes.
func IsIdentByte(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '{', '}', '"':
		return false
	}
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
