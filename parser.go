package vmf

import (
	"fmt"

	"github.com/mapfmt/go-vmf/internal/scanner"
)

// parser implements the recursive descent over VMF source. Each parse
// method is entered with the scanner at the first byte of its construct
// (trivia not yet skipped) and leaves it on the byte after the construct.
// Recursion depth tracks the input's nesting depth.
type parser[S Text] struct {
	sc *scanner.Scanner
}

// document parses `trivia block* trivia EOF` and wraps the top-level blocks
// in the synthesized root. Anything left over that cannot start a block is
// trailing garbage and aborts the parse.
func (p *parser[S]) document() (*Vmf[S], *failure) {
	doc := &Vmf[S]{Root: Block[S]{Name: store[S](RootName)}}
	p.sc.SkipTrivia()
	for !p.sc.EOF() {
		if !scanner.IsIdentByte(p.sc.Peek()) {
			return nil, fail(UnexpectedTrailingInput, p.sc.Pos())
		}
		blk, f := p.block()
		if f != nil {
			return nil, f
		}
		doc.Root.Blocks = append(doc.Root.Blocks, blk)
		p.sc.SkipTrivia()
	}
	return doc, nil
}

// block parses `identifier trivia '{' body '}'`. The body interleaves
// properties and nested blocks freely and may be empty. The next non-trivia
// byte decides each step: '"' starts a property, '}' closes the block, an
// identifier byte starts a nested block.
func (p *parser[S]) block() (*Block[S], *failure) {
	p.sc.SkipTrivia()
	nameOff := p.sc.Pos()
	name, ok := p.sc.Identifier()
	if !ok {
		return nil, fail(ExpectedIdentifier, nameOff)
	}
	p.sc.SkipTrivia()
	if p.sc.Peek() != '{' {
		return nil, fail(ExpectedOpenBrace, p.sc.Pos()).in(blockFrame(name), nameOff)
	}
	p.sc.Advance()

	blk := &Block[S]{Name: store[S](name)}
	for {
		p.sc.SkipTrivia()
		switch {
		case p.sc.EOF():
			return nil, fail(ExpectedCloseBrace, p.sc.Pos()).in(blockFrame(name), nameOff)
		case p.sc.Peek() == '}':
			p.sc.Advance()
			return blk, nil
		case p.sc.Peek() == '"':
			prop, f := p.property()
			if f != nil {
				return nil, f.in(blockFrame(name), nameOff)
			}
			blk.Props = append(blk.Props, prop)
		case scanner.IsIdentByte(p.sc.Peek()):
			child, f := p.block()
			if f != nil {
				return nil, f.in(blockFrame(name), nameOff)
			}
			blk.Blocks = append(blk.Blocks, child)
		default:
			// Only '{' is left: not a property start, not a block start.
			return nil, fail(ExpectedIdentifier, p.sc.Pos()).in(blockFrame(name), nameOff)
		}
	}
}

// property parses `'"' key '"' trivia '"' value '"'`. A key without a
// following quoted value is the classic malformed case and reports
// ExpectedPropertyValue at the byte where the value should have started.
func (p *parser[S]) property() (Property[S], *failure) {
	keyOff := p.sc.Pos()
	key, ok := p.sc.QuotedString()
	if !ok {
		return Property[S]{}, fail(UnterminatedString, keyOff).in("property", keyOff)
	}
	p.sc.SkipTrivia()
	if p.sc.Peek() != '"' {
		return Property[S]{}, fail(ExpectedPropertyValue, p.sc.Pos()).in("property", keyOff)
	}
	valOff := p.sc.Pos()
	value, ok := p.sc.QuotedString()
	if !ok {
		return Property[S]{}, fail(UnterminatedString, valOff).in("property", keyOff)
	}
	return Property[S]{Key: store[S](key), Value: store[S](value)}, nil
}

func blockFrame(name string) string {
	return fmt.Sprintf("block %q", name)
}
