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

type totalCmd struct {
	tax      string
	discount string
	detail   bool
	raw      bool
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "compute the total cost including tax and discount" }
func (*totalCmd) Usage() string {
	return `shop total [-tax <percent>] [-discount <percent>] [-detail [-md]]

  Computes the total cost of the list. The tax is added to the subtotal first,
  then the discount is taken from the tax-inclusive amount.

  Percentages are written without the percent sign and must be within [0, 100].
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tax, "tax", "0", "tax rate in percent")
	f.StringVar(&c.discount, "discount", "0", "discount in percent")
	f.BoolVar(&c.detail, "detail", false, "display the subtotal, tax and discount amounts")
	f.BoolVar(&c.raw, "md", false, "with -detail, print raw markdown instead of rendering it")
}

func (c *totalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tax, err := shopping.ParsePercent(c.tax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tax rate: %v\n", err)
		return subcommands.ExitUsageError
	}
	discount, err := shopping.ParsePercent(c.discount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing discount: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	b, err := ledger.Breakdown(tax, discount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing total: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.detail {
		fmt.Fprintf(stdout, "The total cost including tax and discount is: %s\n", shopping.M(b.Total, currency))
		return subcommands.ExitSuccess
	}
	md := renderer.TotalMarkdown(b, tax, discount, currency)
	if c.raw {
		fmt.Fprint(stdout, md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
