package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/shopping/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	raw bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the shopping list" }
func (*listCmd) Usage() string {
	return `shop list [-md]

  Displays the items of the list with their quantity, unit price and cost.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "md", false, "print raw markdown instead of rendering it")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.ListMarkdown(ledger, currency)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
