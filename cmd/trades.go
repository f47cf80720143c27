package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fisco730/renderer"

	"github.com/google/subcommands"
)

// tradesCmd lists the trades of the tax year as the calculators will see them.
type tradesCmd struct{}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list the trades of the tax year" }
func (*tradesCmd) Usage() string {
	return `f730 trades [-csv <file>] [-year <year>]

  Parses the exchange export and lists the trades of the tax year in
  chronological order, the exact input of the tax computation.
`
}

func (*tradesCmd) SetFlags(*flag.FlagSet) {}

func (*tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, period, err := DecodeTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TradesMarkdown(trades, period))
	return subcommands.ExitSuccess
}
