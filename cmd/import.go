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

type importCmd struct {
	json bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the shopping list with a CSV file" }
func (*importCmd) Usage() string {
	return `shop import [-json] <file>

  Replaces the whole list with the content of <file>, in the
  "Item,Quantity,Price" CSV format, or a JSON array with -json.

  The file is read entirely before anything changes: if any row is malformed
  the list is left as it was.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "read a JSON array instead of CSV")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		err = importJSON(path, ledger)
	} else {
		err = ledger.ImportFrom(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Imported %s from %s.\n", renderer.Count(ledger.Len()), path)
	return subcommands.ExitSuccess
}

func importJSON(path string, l *shopping.Ledger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", shopping.ErrIO, err)
	}
	defer f.Close()

	imported, err := shopping.DecodeJSON(f)
	if err != nil {
		return err
	}
	l.Replace(imported)
	return nil
}
