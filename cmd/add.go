package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopping"
	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an item to the list, or add to its quantity" }
func (*addCmd) Usage() string {
	return `shop add <item> <quantity> <price>

  Adds <quantity> units of <item> at <price> each. If <item> is already in the
  list, <quantity> is added to its quantity and its price is left unchanged.

  <quantity> must be a non-negative integer, <price> a non-negative number.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (*addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name, quantity, price := f.Arg(0), f.Arg(1), f.Arg(2)

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := ledger.UpsertString(name, quantity, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	item, _ := ledger.Get(name)
	fmt.Fprintf(stdout, "%s: %d at %s\n", name, item.Quantity, shopping.M(item.UnitPrice, currency))
	return subcommands.ExitSuccess
}
