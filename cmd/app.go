// Package cmd implements the CLI application to compute the tax figures.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"fisco730"
	"fisco730/date"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&taxCmd{}, "taxes")
	c.Register(&balanceCmd{}, "taxes")
	c.Register(&tradesCmd{}, "trades")
	c.Register(&fetchCmd{}, "quotes")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var csvFile = flag.String("csv", "trades.csv", "Path to the exchange CSV export")
var taxYear = flag.Int("year", date.Today().Year()-1, "Tax year to declare")
var quotesFile = flag.String("quotes", "quotes.jsonl", "Path to the quote database file (JSONL format)")

// DecodeTrades loads the export and returns the sorted trades of the tax
// year together with the declaration period.
func DecodeTrades() (fisco730.TradeSet, date.Range, error) {
	period := date.Year(*taxYear)
	f, err := os.Open(*csvFile)
	if err != nil {
		return fisco730.TradeSet{}, period, fmt.Errorf("cannot open export %q: %w", *csvFile, err)
	}
	defer f.Close()
	trades, err := fisco730.ImportTradeSet(f, *taxYear)
	if err != nil {
		return fisco730.TradeSet{}, period, err
	}
	return trades, period, nil
}

// DecodeQuotes loads the quote database file.
func DecodeQuotes() (*fisco730.QuoteDatabase, error) {
	f, err := os.Open(*quotesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open quotes %q (run 'fetch' first): %w", *quotesFile, err)
	}
	defer f.Close()
	return fisco730.ImportQuotes(f)
}

// printMarkdown renders markdown on the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
