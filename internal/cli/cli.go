// Package cli implements the fieldec command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	j "github.com/goccy/go-json"

	fieldec "github.com/fieldec/fieldec"
	"github.com/fieldec/fieldec/i18n"
)

// CLI is the kong command tree for the fieldec binary.
type CLI struct {
	Lang string `help:"Message language." default:"en" enum:"en,ja"`

	Get   GetCmd   `cmd:"" help:"Decode a single value at a key path."`
	Check CheckCmd `cmd:"" help:"Verify that every given key path is present."`
}

// AfterApply switches the message language before any command runs.
func (c *CLI) AfterApply() error {
	i18n.SetLanguage(c.Lang)
	return nil
}

// GetCmd decodes one value out of a JSON or YAML document and prints it as
// JSON on stdout.
type GetCmd struct {
	Path   string `help:"Dot-separated key path (e.g. author.name)." short:"p" required:""`
	Type   string `help:"Expected value type." short:"t" default:"any" enum:"string,number,bool,any"`
	Format string `help:"Input format." short:"f" default:"json" enum:"json,yaml"`
	File   string `arg:"" optional:"" help:"Input file (stdin when omitted)." type:"path"`

	Out io.Writer `kong:"-"`
}

func (c *GetCmd) Run() error {
	src, closefn, err := openSource(c.File, c.Format)
	if err != nil {
		return err
	}
	defer closefn()

	ctx := context.Background()
	segs := splitPath(c.Path)

	var out any
	switch c.Type {
	case "string":
		out, err = decodeAt(ctx, src, segs, fieldec.String())
	case "number":
		out, err = decodeAt(ctx, src, segs, fieldec.Number())
	case "bool":
		out, err = decodeAt(ctx, src, segs, fieldec.Bool())
	default:
		out, err = decodeAt(ctx, src, segs, fieldec.Any())
	}
	if err != nil {
		return err
	}

	w := c.Out
	if w == nil {
		w = os.Stdout
	}
	enc := j.NewEncoder(w)
	return enc.Encode(out)
}

// CheckCmd walks every requested path with a null-tolerant decoder and
// reports the first one that cannot be resolved.
type CheckCmd struct {
	Paths  []string `help:"Dot-separated key paths that must be present." short:"p" required:""`
	Format string   `help:"Input format." short:"f" default:"json" enum:"json,yaml"`
	File   string   `arg:"" optional:"" help:"Input file (stdin when omitted)." type:"path"`
}

func (c *CheckCmd) Run() error {
	src, closefn, err := openSource(c.File, c.Format)
	if err != nil {
		return err
	}
	defer closefn()

	v, err := src.Value()
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	ctx := context.Background()
	for _, p := range c.Paths {
		dec := fieldec.RequiredAt(splitPath(p), fieldec.Any(), func(any) fieldec.Decoder[struct{}] {
			return fieldec.Succeed(struct{}{})
		})
		if _, err := fieldec.Decode(ctx, dec, v); err != nil {
			return err
		}
	}
	return nil
}

// decodeAt runs a single-field RequiredAt chain terminated by Succeed.
func decodeAt[T any](ctx context.Context, src fieldec.Source, segs []string, d fieldec.Decoder[T]) (any, error) {
	dec := fieldec.RequiredAt(segs, d, func(v T) fieldec.Decoder[any] {
		return fieldec.Succeed[any](v)
	})
	return fieldec.DecodeFrom(ctx, dec, src)
}

func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}

func openSource(file, format string) (fieldec.Source, func(), error) {
	var r io.Reader = os.Stdin
	closefn := func() {}
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, nil, err
		}
		r = f
		closefn = func() { _ = f.Close() }
	}
	if format == "yaml" {
		return fieldec.YAMLReader(r), closefn, nil
	}
	return fieldec.JSONReader(r), closefn, nil
}
