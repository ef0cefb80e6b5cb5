/*
Package vmf parses and serializes the Valve Map Format, the block-structured
text format used by the Source engine's map editor. A VMF document is a tree
of named blocks, each holding quoted key/value properties and nested blocks:

	// This is a comment.
	ClassName_1
	{
		"Property_1" "Value_1"
		ClassName_2
		{
		}
	}

Parse is the sole entry point. It is configured entirely by its two type
parameters: the string storage mode and the error detail mode.

The storage mode decides what the parsed tree's strings are backed by.
Borrowed stores zero-copy substrings of the input, so the tree keeps the
input string's backing array alive for as long as it is referenced. Owned
copies every token out of the input, so the tree and the input are
independent:

	doc, err := vmf.Parse[vmf.Borrowed, vmf.SimpleError](input)
	if err != nil {
		// handle error
	}
	fmt.Println(doc.Root.Blocks[0].Name)

The error mode decides how much diagnostic detail a failed parse reports,
from UnitError (failure with no detail) through TupleError and SimpleError
up to VerboseError, which carries the chain of parser contexts unwound from
the failure point. All four are built from the same internal failure
information; the choice has no effect on what the parser accepts.

A parsed tree serializes back to text with String or Format using a fixed
canonical layout: one tab of indentation per nesting depth, braces on their
own lines, properties before nested blocks. Input that already uses the
canonical layout round-trips byte-for-byte; any accepted input round-trips
structurally, meaning re-parsing the serialized output yields an equal tree.

Two limitations are part of the grammar rather than bugs: quoted strings
have no escape sequences, so a literal '"' cannot appear inside a key or
value, and nesting depth is bounded only by the call stack, so pathologically
deep input can exhaust it.
*/
package vmf
