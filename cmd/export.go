package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopping"
	"github.com/etnz/shopping/renderer"
	"github.com/google/subcommands"
)

type exportCmd struct {
	json bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save the shopping list to a CSV file" }
func (*exportCmd) Usage() string {
	return `shop export [-json] <file>

  Writes the list to <file> in the "Item,Quantity,Price" CSV format, or as a
  JSON array with -json. An existing file is overwritten.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "write a JSON array instead of CSV")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		err = exportJSON(path, ledger)
	} else {
		err = ledger.ExportTo(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Exported %s to %s.\n", renderer.Count(ledger.Len()), path)
	return subcommands.ExitSuccess
}

func exportJSON(path string, l *shopping.Ledger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", shopping.ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", shopping.ErrIO, cerr)
		}
	}()
	return shopping.EncodeJSON(f, l)
}
