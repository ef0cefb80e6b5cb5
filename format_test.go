package vmf_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapfmt/go-vmf"
)

func TestFormat_RoundTripCanonical(t *testing.T) {
	t.Run("borrowed", func(t *testing.T) {
		doc := mustParse(t, canonicalInput)
		assert.Equal(t, canonicalInput, doc.String())
	})

	t.Run("owned", func(t *testing.T) {
		doc, err := vmf.Parse[vmf.Owned, vmf.UnitError](canonicalInput)
		require.NoError(t, err)
		assert.Equal(t, canonicalInput, doc.String())
	})

	t.Run("compact input serializes to canonical", func(t *testing.T) {
		doc := mustParse(t, compactInput)
		assert.Equal(t, canonicalInput, doc.String())
	})
}

func TestFormat_RoundTripStructural(t *testing.T) {
	inputs := []string{
		"A\n{\n}",
		"  A  {  }  ",
		"// c\nA{\"k\" \"v\"}",
		`a{"k" "1" "k" "2" b{c{}} "late" "prop"}`,
		"block1{}block2{}block3{}",
		"",
	}
	for _, input := range inputs {
		doc := mustParse(t, input)
		again := mustParse(t, doc.String())
		assert.True(t, doc.Equal(again), "input %q", input)
	}
}

func TestFormat_SerializerTemplate(t *testing.T) {
	// Interleaved bodies are re-emitted with all properties before all
	// nested blocks.
	doc := mustParse(t, `a{"p1" "1" b{} "p2" "2"}`)
	want := "a\n{\n\t\"p1\" \"1\"\n\t\"p2\" \"2\"\n\tb\n\t{\n\t}\n}"
	assert.Equal(t, want, doc.String())
}

func TestFormat_TopLevelSeparator(t *testing.T) {
	doc := mustParse(t, "a{}b{}")
	want := "a\n{\n}\nb\n{\n}"
	got := doc.String()
	assert.Equal(t, want, got)
	assert.False(t, strings.HasSuffix(got, "\n"), "no trailing newline")
}

func TestFormat_Writer(t *testing.T) {
	doc := mustParse(t, canonicalInput)
	var sb strings.Builder
	require.NoError(t, doc.Format(&sb))
	assert.Equal(t, canonicalInput, sb.String())
}

func TestBlock_String(t *testing.T) {
	blk := &vmf.Block[vmf.Owned]{
		Name:  "entity",
		Props: []vmf.Property[vmf.Owned]{{Key: "classname", Value: "info_player_start"}},
		Blocks: []*vmf.Block[vmf.Owned]{
			{Name: "editor"},
		},
	}
	want := "entity\n{\n\t\"classname\" \"info_player_start\"\n\teditor\n\t{\n\t}\n}"
	assert.Equal(t, want, blk.String())
}

func TestFormat_NewIDs(t *testing.T) {
	input := "world {}\n" +
		`world{ "id" "O_O two worlds incredibly rare/dumb but supported" }` + "\n" +
		"solid { \n" +
		"    \"id\" \"not a number\"\n" +
		"    side { \"id\" \"42\" }\n" +
		"    side { \"id\" \"420\" }\n" +
		"    side { \"id\" \"69\" }\n" +
		"}\n" +
		`solid { "id" "infinity" }` + "\n" +
		"entity {}\n" +
		"entity { entity {} }\n"
	want := `world { "id" "1" }
world{ "id" "2" }
solid {
    "id" "1"
    side { "id" "1" }
    side { "id" "2" }
    side { "id" "3" }
}
solid { "id" "2" }
entity { "id" "1" }
entity { "id" "2" entity { "id" "3" } }`

	doc := mustParse(t, input)
	renumbered := mustParse(t, doc.StringNewIDs())
	truth := mustParse(t, want)
	assert.True(t, truth.Equal(renumbered))
}

func TestFormat_NewIDsUnknownClassUntouched(t *testing.T) {
	doc := mustParse(t, `editor{"id" "99" "color" "0 255 0"}`)
	out := mustParse(t, doc.StringNewIDs())
	require.Len(t, out.Root.Blocks, 1)
	props := out.Root.Blocks[0].Props
	require.Len(t, props, 2)
	assert.Equal(t, vmf.Property[vmf.Borrowed]{Key: "id", Value: "99"}, props[0])
}
