package vmf

import "iter"

// RootName is the name of the synthesized root block that holds every
// top-level block of a document. It never appears in source text.
const RootName = "root"

// Vmf is a parsed document: a root Block named RootName with no properties
// whose children are the document's top-level blocks. The root owns all
// descendants exclusively.
type Vmf[S Text] struct {
	Root Block[S]
}

// Block is a named node holding quoted key/value properties and nested
// blocks. Props and Blocks each preserve source order; duplicate property
// keys are kept as-is. Blocks built by Parse are meant to be read and
// serialized, not mutated.
type Block[S Text] struct {
	Name S
	// A solid's side block carries a fixed handful of properties while an
	// entity can carry dozens, so this stays a plain ordered slice.
	Props  []Property[S]
	Blocks []*Block[S]
}

// Property is a key/value pair; both halves were quoted literals in the
// source.
type Property[S Text] struct {
	Key   S
	Value S
}

// Equal reports whether two documents are structurally equal.
func (v *Vmf[S]) Equal(other *Vmf[S]) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Root.Equal(&other.Root)
}

// Equal reports whether two blocks have the same name, the same properties
// in the same order, and recursively equal children in the same order.
func (b *Block[S]) Equal(other *Block[S]) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.Name != other.Name || len(b.Props) != len(other.Props) || len(b.Blocks) != len(other.Blocks) {
		return false
	}
	for i := range b.Props {
		if b.Props[i] != other.Props[i] {
			return false
		}
	}
	for i := range b.Blocks {
		if !b.Blocks[i].Equal(other.Blocks[i]) {
			return false
		}
	}
	return true
}

// Children iterates over the direct child blocks, in source order.
func (b *Block[S]) Children() iter.Seq[*Block[S]] {
	return func(yield func(*Block[S]) bool) {
		for _, c := range b.Blocks {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants iterates over b and every block below it in depth-first
// pre-order, yielding each block with its depth relative to b (b itself is
// yielded first at depth 0).
func (b *Block[S]) Descendants() iter.Seq2[int, *Block[S]] {
	return func(yield func(int, *Block[S]) bool) {
		var walk func(depth int, blk *Block[S]) bool
		walk = func(depth int, blk *Block[S]) bool {
			if !yield(depth, blk) {
				return false
			}
			for _, c := range blk.Blocks {
				if !walk(depth+1, c) {
					return false
				}
			}
			return true
		}
		walk(0, b)
	}
}

// BreadthFirst iterates over b and every block below it level by level,
// yielding each block with its depth relative to b (b itself is yielded
// first at depth 0).
func (b *Block[S]) BreadthFirst() iter.Seq2[int, *Block[S]] {
	return func(yield func(int, *Block[S]) bool) {
		type item struct {
			depth int
			blk   *Block[S]
		}
		queue := []item{{0, b}}
		for len(queue) > 0 {
			it := queue[0]
			queue = queue[1:]
			if !yield(it.depth, it.blk) {
				return
			}
			for _, c := range it.blk.Blocks {
				queue = append(queue, item{it.depth + 1, c})
			}
		}
	}
}

// Descendants iterates over the whole document; see Block.Descendants. The
// root block is yielded at depth 0 and the top-level blocks at depth 1.
func (v *Vmf[S]) Descendants() iter.Seq2[int, *Block[S]] {
	return v.Root.Descendants()
}

// BreadthFirst iterates over the whole document; see Block.BreadthFirst.
func (v *Vmf[S]) BreadthFirst() iter.Seq2[int, *Block[S]] {
	return v.Root.BreadthFirst()
}
