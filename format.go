package vmf

import (
	"io"
	"strconv"
	"strings"
)

// The canonical layout, applied recursively at each nesting depth d (the
// root's children are at depth 0):
//
//	<tab*d><name>
//	<tab*d>{
//	<tab*(d+1)>"key" "value"   (each property, in order)
//	<nested blocks at d+1>     (each, in order)
//	<tab*d>}
//
// A document is its top-level blocks joined by single newlines, with no
// trailing newline. Properties are always emitted before nested blocks, so
// a body that interleaved the two kinds loses that interleaving; re-parsing
// the output still yields an equal tree.

// Format writes the canonical serialization of the document to w.
func (v *Vmf[S]) Format(w io.Writer) error {
	f := &formatter{w: w}
	for i, blk := range v.Root.Blocks {
		if i > 0 {
			f.write("\n")
		}
		writeBlock(f, blk)
	}
	return f.err
}

// String returns the canonical serialization of the document.
func (v *Vmf[S]) String() string {
	var b strings.Builder
	v.Format(&b)
	return b.String()
}

// Format writes the canonical serialization of the block to w, at depth 0.
func (b *Block[S]) Format(w io.Writer) error {
	f := &formatter{w: w}
	writeBlock(f, b)
	return f.err
}

// String returns the canonical serialization of the block.
func (b *Block[S]) String() string {
	var sb strings.Builder
	b.Format(&sb)
	return sb.String()
}

// FormatNewIDs writes the document like Format but renumbers the "id"
// property of world, solid, side, and entity blocks from fresh per-class
// counters: the new id is emitted as the first property and any existing id
// properties are dropped. Blocks of other classes are written untouched.
// Hammer requires unique ids per class; pasting blocks between files breaks
// that, and renumbering on write restores it.
func (v *Vmf[S]) FormatNewIDs(w io.Writer) error {
	f := &formatter{w: w}
	var st idState
	for i, blk := range v.Root.Blocks {
		if i > 0 {
			f.write("\n")
		}
		writeBlockNewIDs(f, blk, &st)
	}
	return f.err
}

// StringNewIDs returns the document serialized with FormatNewIDs.
func (v *Vmf[S]) StringNewIDs() string {
	var b strings.Builder
	v.FormatNewIDs(&b)
	return b.String()
}

// idState holds the per-class id counters for FormatNewIDs. Visgroup and
// group ids are left alone; entity editor data references those.
type idState struct {
	world, solid, side, entity int
}

func (st *idState) next(class string) (int, bool) {
	switch class {
	case "world":
		st.world++
		return st.world, true
	case "solid":
		st.solid++
		return st.solid, true
	case "side":
		st.side++
		return st.side, true
	case "entity":
		st.entity++
		return st.entity, true
	}
	return 0, false
}

// formatter tracks the output writer, the current indentation depth, and
// the first write error; once err is set the remaining writes are no-ops.
type formatter struct {
	w     io.Writer
	depth int
	err   error
}

func (f *formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *formatter) writeIndent() {
	for range f.depth {
		f.write("\t")
	}
}

func (f *formatter) writeProperty(key, value string) {
	f.writeIndent()
	f.write("\"")
	f.write(key)
	f.write("\" \"")
	f.write(value)
	f.write("\"\n")
}

// writeBlock and writeBlockNewIDs are free functions because methods cannot
// be generic over the block's storage parameter.

func writeBlock[S Text](f *formatter, b *Block[S]) {
	f.writeIndent()
	f.write(string(b.Name))
	f.write("\n")
	f.writeIndent()
	f.write("{\n")
	f.depth++
	for _, p := range b.Props {
		f.writeProperty(string(p.Key), string(p.Value))
	}
	for _, child := range b.Blocks {
		writeBlock(f, child)
		f.write("\n")
	}
	f.depth--
	f.writeIndent()
	f.write("}")
}

func writeBlockNewIDs[S Text](f *formatter, b *Block[S], st *idState) {
	f.writeIndent()
	f.write(string(b.Name))
	f.write("\n")
	f.writeIndent()
	f.write("{\n")
	f.depth++
	if id, ok := st.next(string(b.Name)); ok {
		f.writeProperty("id", strconv.Itoa(id))
		for _, p := range b.Props {
			if string(p.Key) != "id" {
				f.writeProperty(string(p.Key), string(p.Value))
			}
		}
	} else {
		for _, p := range b.Props {
			f.writeProperty(string(p.Key), string(p.Value))
		}
	}
	for _, child := range b.Blocks {
		writeBlockNewIDs(f, child, st)
		f.write("\n")
	}
	f.depth--
	f.writeIndent()
	f.write("}")
}
