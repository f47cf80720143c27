package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fisco730"

	"github.com/google/subcommands"
)

const eodhdAPIKeyEnv = "EODHD_API_KEY"

// fetchCmd downloads the quotation histories of the traded assets and stores
// them in the quote database file, so that the tax computation itself never
// touches the network.
type fetchCmd struct {
	apiKey string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download asset quotations for the tax year" }
func (*fetchCmd) Usage() string {
	return `f730 fetch [-csv <file>] [-year <year>] [-quotes <file>] [-api-key <key>]

  Collects the assets traded in the tax year, downloads their daily EUR
  quotation history, and writes the quote database file used by the tax and
  balance commands.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apiKey, "api-key", "", "EODHD API key. If missing it is read from the environment variable "+eodhdAPIKeyEnv+". You can get one at https://eodhd.com/")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.apiKey == "" {
		c.apiKey = os.Getenv(eodhdAPIKeyEnv)
	}
	if c.apiKey == "" {
		fmt.Fprintf(os.Stderr, "Missing API key: use -api-key or set %s\n", eodhdAPIKeyEnv)
		return subcommands.ExitUsageError
	}

	trades, period, err := DecodeTrades()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	db, err := fisco730.FetchQuotes(trades.Assets(), period, c.apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quotes: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(*quotesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating quotes file %q: %v\n", *quotesFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := fisco730.ExportQuotes(out, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing quotes file %q: %v\n", *quotesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote quotations for %d assets to %s\n", len(db.Assets()), *quotesFile)
	return subcommands.ExitSuccess
}
