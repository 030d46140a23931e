package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&shellCmd{}, "")
	commander.Register(&serveCmd{}, "")
	commander.Register(&selftestCmd{}, "")

	flag.Parse()
	if err := withDefaultCommand(flag.CommandLine, "shell"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// withDefaultCommand fija el subcomando a ejecutar cuando no se indicó ninguno.
func withDefaultCommand(fs *flag.FlagSet, name string) error {
	if fs.NArg() > 0 {
		return nil
	}
	return fs.Parse([]string{name})
}
