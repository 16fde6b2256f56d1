package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type removeCmd struct {
	yes bool
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove an item from the list" }
func (*removeCmd) Usage() string {
	return `shop remove [-y] <item>

  Removes <item> from the list, after confirmation.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "do not ask for confirmation")
}

func (c *removeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	ledger, err := DecodeLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ledger.Exists(name) {
		fmt.Fprintf(os.Stderr, "Error: %q is not in the list.\n", name)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Are you sure you want to remove %q?", name)) {
		fmt.Fprintln(stdout, "Nothing removed.")
		return subcommands.ExitSuccess
	}

	if err := ledger.Delete(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Removed %s.\n", name)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on stdin, no is the default.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
