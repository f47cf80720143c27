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

// taxCmd computes the whole declaration: capital gains and losses, average
// balance, IVAFE, and the 730 figures.
type taxCmd struct {
	raw bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "compute capital gains, IVAFE and the 730 figures" }
func (*taxCmd) Usage() string {
	return `f730 tax [-csv <file>] [-year <year>] [-quotes <file>] [-raw]

  Replays the tax year's trades, computes the realized capital gains and
  losses with their substitute tax, the average yearly balance and the IVAFE,
  and prints the figures to report on the modello 730.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	gains, err := taxes.CapitalGainsAndLosses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing gains and losses: %v\n", err)
		return subcommands.ExitFailure
	}
	average, err := taxes.AverageBalance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing the average balance: %v\n", err)
		return subcommands.ExitFailure
	}
	ivafe := taxes.Ivafe(average)
	m730 := fisco730.PrepareModule730(average, ivafe, gains)

	md := renderer.GainsMarkdown(gains, period) + "\n" +
		renderer.BalanceMarkdown(average, ivafe, period) + "\n" +
		renderer.Module730Markdown(m730, period)
	if c.raw {
		fmt.Print(md)
	} else {
		printMarkdown(md)
	}
	return subcommands.ExitSuccess
}
