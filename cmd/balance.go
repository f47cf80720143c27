package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fisco730"
	"fisco730/renderer"

	"github.com/google/subcommands"
)

// balanceCmd computes only the average balance and the IVAFE.
type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "compute the average yearly balance and the IVAFE" }
func (*balanceCmd) Usage() string {
	return `f730 balance [-csv <file>] [-year <year>] [-quotes <file>]

  Integrates the daily cash balance and the market value of the held assets
  over the tax year, and derives the IVAFE from the average.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, period, err := DecodeTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	quotes, err := DecodeQuotes()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	taxes := fisco730.NewTaxes(trades, quotes, period)
	average, err := taxes.AverageBalance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the average balance: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalanceMarkdown(average, taxes.Ivafe(average), period))
	return subcommands.ExitSuccess
}
