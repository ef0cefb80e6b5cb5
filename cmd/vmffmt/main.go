// Command vmffmt reformats, validates, and inspects VMF map files.
//
//	vmffmt fmt map.vmf          print map.vmf in canonical formatting
//	vmffmt fmt -w *.vmf         rewrite files in place
//	vmffmt fmt --new-ids a.vmf  reformat and renumber entity/brush ids
//	vmffmt check *.vmf          parse only, report the first syntax error
//	vmffmt dump map.vmf         export the parsed tree as YAML or JSON
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/mapfmt/go-vmf"
)

type cli struct {
	Fmt   fmtCmd   `cmd:"" help:"Rewrite VMF files in canonical formatting."`
	Check checkCmd `cmd:"" help:"Parse VMF files and report the first syntax error in each."`
	Dump  dumpCmd  `cmd:"" help:"Export the parsed block tree as YAML or JSON."`
}

func main() {
	var c cli
	ktx := kong.Parse(&c,
		kong.Name("vmffmt"),
		kong.Description("Format and inspect Valve Map Format files."),
		kong.UsageOnError(),
	)
	ktx.FatalIfErrorf(ktx.Run())
}

type fmtCmd struct {
	Write  bool     `short:"w" help:"Write result back to the source file instead of stdout."`
	NewIDs bool     `name:"new-ids" help:"Renumber the id property of world, solid, side, and entity blocks."`
	Paths  []string `arg:"" type:"existingfile" help:"VMF files to format."`
}

func (c *fmtCmd) Run() error {
	for _, path := range c.Paths {
		doc, err := parseFile(path)
		if err != nil {
			return err
		}
		out := doc.String()
		if c.NewIDs {
			out = doc.StringNewIDs()
		}
		if c.Write {
			if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			continue
		}
		fmt.Println(out)
	}
	return nil
}

type checkCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"VMF files to validate."`
}

func (c *checkCmd) Run() error {
	failed := 0
	for _, path := range c.Paths {
		if _, err := parseFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to parse", failed, len(c.Paths))
	}
	return nil
}

type dumpCmd struct {
	Format string `enum:"yaml,json" default:"yaml" help:"Output format (yaml or json)."`
	Path   string `arg:"" type:"existingfile" help:"VMF file to dump."`
}

func (c *dumpCmd) Run() error {
	doc, err := parseFile(c.Path)
	if err != nil {
		return err
	}
	blocks := make([]dumpBlock, len(doc.Root.Blocks))
	for i, blk := range doc.Root.Blocks {
		blocks[i] = newDumpBlock(blk)
	}
	return writeDump(os.Stdout, blocks, c.Format)
}

// dumpBlock mirrors vmf.Block with plain string fields and marshal tags so
// the core tree types stay free of serialization concerns. Properties stay
// an ordered pair list: VMF permits duplicate keys, which a map would
// collapse.
type dumpBlock struct {
	Name   string      `yaml:"name" json:"name"`
	Props  []dumpProp  `yaml:"props,omitempty" json:"props,omitempty"`
	Blocks []dumpBlock `yaml:"blocks,omitempty" json:"blocks,omitempty"`
}

type dumpProp struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

func newDumpBlock(b *vmf.Block[vmf.Borrowed]) dumpBlock {
	d := dumpBlock{Name: string(b.Name)}
	for _, p := range b.Props {
		d.Props = append(d.Props, dumpProp{Key: string(p.Key), Value: string(p.Value)})
	}
	for _, child := range b.Blocks {
		d.Blocks = append(d.Blocks, newDumpBlock(child))
	}
	return d
}

func writeDump(w io.Writer, blocks []dumpBlock, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(blocks)
	}
	out, err := yaml.Marshal(blocks)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// parseFile reads and parses one file with verbose diagnostics. Borrowed
// storage is fine here: the file contents outlive every use of the tree.
func parseFile(path string) (*vmf.Vmf[vmf.Borrowed], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := vmf.Parse[vmf.Borrowed, vmf.VerboseError](string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
