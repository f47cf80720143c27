package main

import (
	"context"
	"flag"
	"os"
	"path"

	"fisco730/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// completion must run before flag parsing; it exits when invoked by the shell.
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"tax":     {Flags: map[string]complete.Predictor{"raw": predict.Nothing}},
			"balance": {},
			"trades":  {},
			"fetch":   {Flags: map[string]complete.Predictor{"api-key": predict.Something}},
			"topic":   {Args: predict.Set{"readme", "gains", "ivafe", "quotes", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"csv":    predict.Files("*.csv"),
			"year":   predict.Something,
			"quotes": predict.Files("*.jsonl"),
		},
	}).Complete("f730")
}
