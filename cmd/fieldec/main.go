package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fieldec/fieldec/internal/cli"
)

func main() {
	var root cli.CLI
	parser := kong.Must(&root,
		kong.Name("fieldec"),
		kong.Description("Decode values out of JSON/YAML documents by key path."),
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "fieldec:", err)
		os.Exit(1)
	}
}
